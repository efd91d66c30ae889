package commands_test

import (
	"context"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand(t *testing.T) {
	t.Run("non-staff is linked to itself", func(t *testing.T) {
		actor := newActor(t, "dan@example.com", false)
		other := kernel.NewUUID()

		cmd, err := commands.NewCreateDriverCommand(actor, " Dan ", "0700", &other)

		require.NoError(t, err)
		require.NotNil(t, cmd.PrincipalID())
		assert.True(t, cmd.PrincipalID().IsEqual(actor.ID()))
		assert.Equal(t, "Dan", cmd.Name())
	})

	t.Run("staff may leave the profile unlinked", func(t *testing.T) {
		cmd, err := commands.NewCreateDriverCommand(newActor(t, "s@example.com", true), "Walk-in", "", nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.PrincipalID())
	})

	t.Run("staff may link another principal", func(t *testing.T) {
		target := kernel.NewUUID()

		cmd, err := commands.NewCreateDriverCommand(newActor(t, "s@example.com", true), "Dan", "", &target)

		require.NoError(t, err)
		require.NotNil(t, cmd.PrincipalID())
		assert.True(t, cmd.PrincipalID().IsEqual(target))
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := commands.NewCreateDriverCommand(newActor(t, "", false), " ", "", nil)

		require.ErrorIs(t, err, driver.ErrNameIsRequired)
	})
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	actor := newActor(t, "dan@example.com", false)
	cmd, err := commands.NewCreateDriverCommand(actor, "Dan", "0700", nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("ExistsForPrincipal", ctx, actor.ID()).Return(false, nil).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory)
	d, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, d.IsLinkedTo(actor.ID()))
	assert.True(t, d.IsAvailable())
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_SecondProfileConflicts(t *testing.T) {
	ctx := context.Background()
	actor := newActor(t, "dan@example.com", false)
	cmd, err := commands.NewCreateDriverCommand(actor, "Dan again", "", nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("ExistsForPrincipal", ctx, actor.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	driverRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_UnlinkedSkipsExistenceCheck(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateDriverCommand(newActor(t, "s@example.com", true), "Walk-in", "", nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	driverRepo.On("Add", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCreateDriverCommandHandler(factory)
	d, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	_, linked := d.PrincipalID()
	assert.False(t, linked)
	driverRepo.AssertNotCalled(t, "ExistsForPrincipal", mock.Anything, mock.Anything)
}
