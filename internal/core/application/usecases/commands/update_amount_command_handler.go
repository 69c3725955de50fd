package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// UpdateAmountCommandHandler updates a shipment's price.
// Only amount and updatedAt change; the lifecycle and audit collections are
// untouched.
type UpdateAmountCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateAmountCommandHandler creates a handler for pricing updates.
func NewUpdateAmountCommandHandler(uowFactory ShipmentUoWFactory) UpdateAmountCommandHandler {
	return UpdateAmountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing update command and returns the updated
// aggregate.
func (h *UpdateAmountCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAmountCommand,
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

	if err = aggregate.ChangeAmount(cmd.Amount(), time.Now().UTC()); err != nil {
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
