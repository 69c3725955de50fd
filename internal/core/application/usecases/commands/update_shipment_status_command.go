package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to transition a shipment
// to a new lifecycle status, with an optional actor name and note recorded
// on the resulting history entry.
//
// The target status is only checked for being a valid lifecycle state here;
// admissibility of the transition is decided by the aggregate against the
// current persisted status, inside the handler's transaction.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	targetStatus shipment.Status
	adminName    string
	note         string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to transition a shipment.
// Validates that the shipment id and the target status are well-formed.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	targetStatus shipment.Status,
	adminName string,
	note string,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		adminName: adminName,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment to transition.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TargetStatus returns the requested lifecycle state.
func (c UpdateShipmentStatusCommand) TargetStatus() shipment.Status {
	return c.targetStatus
}

// AdminName returns the optional actor name.
func (c UpdateShipmentStatusCommand) AdminName() string {
	return c.adminName
}

// Note returns the optional free-text note.
func (c UpdateShipmentStatusCommand) Note() string {
	return c.note
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setTargetStatus(targetStatus shipment.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}
	c.targetStatus = targetStatus
	return nil
}
