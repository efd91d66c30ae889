package driver_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	t.Run("creates an available driver linked to a principal", func(t *testing.T) {
		principalID := kernel.NewUUID()

		d, err := driver.NewDriver(kernel.NewUUID(), &principalID, " Dan ", "0700", now)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Dan", d.Name())
		assert.Equal(t, "0700", d.Phone())
		assert.True(t, d.IsAvailable())
		assert.True(t, d.IsLinkedTo(principalID))
		assert.Equal(t, now, d.LastLocationUpdate())

		_, hasLocation := d.Location()
		assert.False(t, hasLocation)

		linked, ok := d.PrincipalID()
		require.True(t, ok)
		assert.True(t, linked.IsEqual(principalID))
	})

	t.Run("may be unlinked", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), nil, "Eve", "", now)

		require.NoError(t, err)
		_, ok := d.PrincipalID()
		assert.False(t, ok)
		assert.False(t, d.IsLinkedTo(kernel.NewUUID()))
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), nil, "  ", "", now)

		require.ErrorIs(t, err, driver.ErrNameIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_UpdateLocation(t *testing.T) {
	created := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	later := created.Add(15 * time.Minute)

	t.Run("updates location and availability", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), nil, "Dan", "", created)
		require.NoError(t, err)
		loc, err := kernel.NewLocation(6.45, 3.39)
		require.NoError(t, err)
		unavailable := false

		err = d.UpdateLocation(driver.LocationUpdate{Location: &loc, IsAvailable: &unavailable}, later)

		require.NoError(t, err)
		got, ok := d.Location()
		require.True(t, ok)
		equal, err := got.IsEqual(loc)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.False(t, d.IsAvailable())
		assert.Equal(t, later, d.LastLocationUpdate())
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		loc, _ := kernel.NewLocation(1, 1)
		d, err := driver.RestoreDriver(kernel.NewUUID(), nil, "Dan", "", &loc, false, created)
		require.NoError(t, err)
		available := true

		require.NoError(t, d.UpdateLocation(driver.LocationUpdate{IsAvailable: &available}, later))

		_, ok := d.Location()
		assert.True(t, ok)
		assert.True(t, d.IsAvailable())
	})

	t.Run("empty update still refreshes the timestamp", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), nil, "Dan", "", created)
		require.NoError(t, err)

		require.NoError(t, d.UpdateLocation(driver.LocationUpdate{}, later))

		assert.Equal(t, later, d.LastLocationUpdate())
	})

	t.Run("rejects an unconstructed location", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), nil, "Dan", "", created)
		require.NoError(t, err)

		err = d.UpdateLocation(driver.LocationUpdate{Location: &kernel.Location{}}, later)

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
		assert.Equal(t, created, d.LastLocationUpdate())
	})
}
