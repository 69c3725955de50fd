package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler applies a validated lifecycle
// transition to a shipment.
//
// The shipment is re-read FOR UPDATE inside the transaction and the
// transition is re-validated against its current persisted status, never
// against a possibly stale client-held value. Two concurrent conflicting
// transitions therefore cannot both succeed: the second writer's read waits
// on the row lock, observes the first's committed status, and fails with an
// invalid-transition rejection.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status
// transitions. Requires a ShipmentUoWFactory for transactional persistence.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// On success exactly one history entry has been appended and the updated
// aggregate is returned, including the new entry, so callers can render
// without a second fetch. On failure the shipment is left unchanged.
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
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

	if _, err = aggregate.ChangeStatus(
		cmd.TargetStatus(), cmd.AdminName(), cmd.Note(), time.Now().UTC(),
	); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
