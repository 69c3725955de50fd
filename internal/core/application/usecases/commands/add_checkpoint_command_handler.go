package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// AddCheckpointCommandHandler appends an operational location update to a
// shipment's checkpoint collection. Checkpoints never touch the status
// lifecycle; they are pure audit records.
type AddCheckpointCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddCheckpointCommandHandler creates a handler for checkpoint appends.
func NewAddCheckpointCommandHandler(uowFactory ShipmentUoWFactory) AddCheckpointCommandHandler {
	return AddCheckpointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkpoint append command and returns the created
// checkpoint record.
func (h *AddCheckpointCommandHandler) Handle(
	ctx context.Context,
	cmd AddCheckpointCommand,
) (*shipment.Checkpoint, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	checkpoint, err := aggregate.AddCheckpoint(
		cmd.Location(), cmd.Description(), cmd.AdminName(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return checkpoint, nil
}
