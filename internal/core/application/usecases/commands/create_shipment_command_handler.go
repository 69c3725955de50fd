package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. New shipments start in Pending with their status history
// seeded, ready for the quoting workflow.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the created
// aggregate so callers can render it without a second fetch.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
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

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.TrackingID(),
		cmd.CustomerID(),
		cmd.ServiceType(),
		cmd.Details(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
