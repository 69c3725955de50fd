package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var ErrAddNoteCommandIsNotConstructed = errors.New(
	"AddNoteCommand must be created via NewAddNoteCommand constructor",
)

// AddNoteCommand represents a request to record an internal free-text
// annotation against a shipment.
type AddNoteCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	text       string
	adminName  string

	guard guard.ConstructorGuard
}

// NewAddNoteCommand creates a command to append a note.
// Text is required and must be non-empty after trimming.
func NewAddNoteCommand(shipmentID kernel.UUID, text, adminName string) (AddNoteCommand, error) {
	cmd := AddNoteCommand{
		adminName: adminName,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setText(text),
	); err != nil {
		return AddNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddNoteCommandIsNotConstructed)
}

// ShipmentID returns the shipment to annotate.
func (c AddNoteCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Text returns the annotation body.
func (c AddNoteCommand) Text() string {
	return c.text
}

// AdminName returns the optional actor name.
func (c AddNoteCommand) AdminName() string {
	return c.adminName
}

func (c *AddNoteCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AddNoteCommand) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return shipment.ErrNoteTextIsRequired
	}
	c.text = text
	return nil
}
