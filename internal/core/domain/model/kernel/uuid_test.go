package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("NewUUID produces distinct valid ids", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("round trips through string and bytes", func(t *testing.T) {
		id := kernel.NewUUID()

		fromString, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(fromString))

		raw := id.Bytes()
		fromBytes, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(fromBytes))
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = kernel.UUIDFromBytes(make([]byte, 16))
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDPtrEqual(t *testing.T) {
	id := kernel.NewUUID()
	same := id
	other := kernel.NewUUID()

	assert.True(t, kernel.UUIDPtrEqual(nil, nil))
	assert.True(t, kernel.UUIDPtrEqual(&id, &same))
	assert.False(t, kernel.UUIDPtrEqual(&id, nil))
	assert.False(t, kernel.UUIDPtrEqual(nil, &id))
	assert.False(t, kernel.UUIDPtrEqual(&id, &other))
}
