package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates the identity, service type, route, package descriptors, and
// contact fields of the shipment to create. The shipment always starts in
// Pending with a seeded status history entry.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	trackingID  string
	customerID  kernel.UUID
	serviceType shipment.ServiceType
	details     shipment.Details

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates the identifiers, the service type, and the required detail
// fields; validation failures are aggregated into a single error.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	trackingID string,
	customerID kernel.UUID,
	serviceType shipment.ServiceType,
	details shipment.Details,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTrackingID(trackingID),
		cmd.setCustomerID(customerID),
		cmd.setServiceType(serviceType),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	// Detail fields are validated by the aggregate constructor.
	cmd.details = details

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the opaque identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TrackingID returns the human-facing tracking identifier.
func (c CreateShipmentCommand) TrackingID() string {
	return c.trackingID
}

// CustomerID returns the owning customer's identifier.
func (c CreateShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceType returns the freight service type.
func (c CreateShipmentCommand) ServiceType() shipment.ServiceType {
	return c.serviceType
}

// Details returns the route, package, and contact attributes.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return shipment.ErrTrackingIDIsRequired
	}
	c.trackingID = trackingID
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateShipmentCommand) setServiceType(serviceType shipment.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	c.serviceType = serviceType
	return nil
}
