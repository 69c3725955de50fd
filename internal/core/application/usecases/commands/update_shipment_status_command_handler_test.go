package commands_test

import (
	"errors"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testShipment(t, shipment.StatusPending)
	cmd, err := commands.NewUpdateShipmentStatusCommand(
		aggregate.ID(), shipment.StatusQuoted, "ada", "quote sent")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, shipment.StatusQuoted, updated.Status())
	require.Len(t, updated.StatusHistory(), 2)
	last := updated.StatusHistory()[1]
	assert.Equal(t, shipment.StatusQuoted, last.Status())
	assert.Equal(t, "ada", last.AdminName())
	assert.Equal(t, "quote sent", last.Note())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_RevalidatesAgainstPersistedStatus(t *testing.T) {
	ctx := t.Context()

	// The caller saw Pending, but the persisted shipment has meanwhile been
	// cancelled. The handler must re-validate against the persisted state
	// and reject without writing.
	aggregate := testShipment(t, shipment.StatusCancelled)
	cmd, err := commands.NewUpdateShipmentStatusCommand(aggregate.ID(), shipment.StatusQuoted, "", "")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	assert.Nil(t, updated)
	assert.Equal(t, shipment.StatusCancelled, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateShipmentStatusCommand(id, shipment.StatusQuoted, "", "")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("shipment", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateShipmentStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateShipmentStatusCommand{} // not constructed properly

	factory := new(MockShipmentUoWFactory)
	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func TestUpdateShipmentStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), shipment.StatusQuoted, "", "")
	require.NoError(t, err)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestNewUpdateShipmentStatusCommand_Validation(t *testing.T) {
	t.Run("rejects zero shipment id", func(t *testing.T) {
		_, err := commands.NewUpdateShipmentStatusCommand(kernel.UUID{}, shipment.StatusQuoted, "", "")
		require.Error(t, err)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		_, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), shipment.StatusUnknown, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
