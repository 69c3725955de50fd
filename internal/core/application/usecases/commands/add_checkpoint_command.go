package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var ErrAddCheckpointCommandIsNotConstructed = errors.New(
	"AddCheckpointCommand must be created via NewAddCheckpointCommand constructor",
)

// AddCheckpointCommand represents a request to record an operational
// location update against a shipment.
type AddCheckpointCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	location    string
	description string
	adminName   string

	guard guard.ConstructorGuard
}

// NewAddCheckpointCommand creates a command to append a checkpoint.
// Location and description are required and must be non-empty after
// trimming.
func NewAddCheckpointCommand(
	shipmentID kernel.UUID,
	location string,
	description string,
	adminName string,
) (AddCheckpointCommand, error) {
	cmd := AddCheckpointCommand{
		adminName: adminName,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setLocation(location),
		cmd.setDescription(description),
	); err != nil {
		return AddCheckpointCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrAddCheckpointCommandIsNotConstructed)
}

// ShipmentID returns the shipment to annotate.
func (c AddCheckpointCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Location returns where the update was recorded.
func (c AddCheckpointCommand) Location() string {
	return c.location
}

// Description returns what happened at the location.
func (c AddCheckpointCommand) Description() string {
	return c.description
}

// AdminName returns the optional actor name.
func (c AddCheckpointCommand) AdminName() string {
	return c.adminName
}

func (c *AddCheckpointCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AddCheckpointCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return shipment.ErrCheckpointLocationIsRequired
	}
	c.location = location
	return nil
}

func (c *AddCheckpointCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return shipment.ErrCheckpointDescriptionIsRequired
	}
	c.description = description
	return nil
}
