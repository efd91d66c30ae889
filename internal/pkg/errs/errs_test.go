package errs_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driver", "123")

		assert.Equal(t, "driver", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: driver 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("request", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: request 42 (cause: database connection failed)", err.Error())
	})

	t.Run("newlines in the id are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("request", "a\nb")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("ValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("address")
		assert.Equal(t, "value is required: address", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("ValueIsInvalidError with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown code"))
		assert.Equal(t, "value is invalid: status (cause: unknown code)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("ValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90)
		assert.Equal(t, "value is out of range: latitude is 91.5, min value is -90, max value is 90", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLifecycleErrors(t *testing.T) {
	t.Run("ForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("update request status", "only the assigned driver")
		assert.Equal(t, "forbidden: update request status: only the assigned driver", err.Error())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("ForbiddenError without reason", func(t *testing.T) {
		assert.Equal(t, "forbidden: assign request", errs.NewForbiddenError("assign request", "").Error())
	})

	t.Run("ConflictError", func(t *testing.T) {
		err := errs.NewConflictError("driver", "a driver profile already exists for this user")
		assert.Equal(t, "conflict: driver: a driver profile already exists for this user", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("InvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("pending", "completed")
		assert.Equal(t, "invalid transition: cannot transition from pending to completed", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		var target *errs.InvalidTransitionError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "pending", target.From)
		assert.Equal(t, "completed", target.To)
	})
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), errs.NewObjectNotFoundError("notification", "7"))
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, wrapped, errs.ErrForbidden)
}
