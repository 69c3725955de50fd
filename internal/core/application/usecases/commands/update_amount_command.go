package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateAmountCommandIsNotConstructed = errors.New(
	"UpdateAmountCommand must be created via NewUpdateAmountCommand constructor",
)

// UpdateAmountCommand represents a pricing update for a shipment,
// independent of the status lifecycle. The amount is a non-negative integer
// in currency minor units; pricing changes produce no audit trail entry.
type UpdateAmountCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	amount     int64

	guard guard.ConstructorGuard
}

// NewUpdateAmountCommand creates a command to update a shipment's price.
// Rejects negative amounts; zero is a valid price.
func NewUpdateAmountCommand(shipmentID kernel.UUID, amount int64) (UpdateAmountCommand, error) {
	cmd := UpdateAmountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAmount(amount),
	); err != nil {
		return UpdateAmountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAmountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAmountCommandIsNotConstructed)
}

// ShipmentID returns the shipment to reprice.
func (c UpdateAmountCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Amount returns the new price in currency minor units.
func (c UpdateAmountCommand) Amount() int64 {
	return c.amount
}

func (c *UpdateAmountCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateAmountCommand) setAmount(amount int64) error {
	if amount < 0 {
		return shipment.ErrAmountIsNegative
	}
	c.amount = amount
	return nil
}
