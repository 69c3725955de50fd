package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Implementations must persist the aggregate together with its
// owned audit collections (status history, checkpoints, notes) so that a Get
// rehydrates the complete aggregate.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate, including its seeded status
	// history. The shipment must be valid and not already exist.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate. New audit
	// records are appended; existing records are immutable and never
	// rewritten.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its opaque identifier, with all
	// audit collections loaded in append order. Returns an
	// errs.ObjectNotFoundError when no shipment exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingID retrieves a shipment aggregate by its human-facing
	// tracking identifier. Returns an errs.ObjectNotFoundError when no
	// shipment carries the tracking id.
	GetByTrackingID(ctx context.Context, trackingID string) (*shipment.Shipment, error)

	// Delete removes a shipment and its owned audit records. Returns an
	// errs.ObjectNotFoundError when no shipment exists for the id.
	Delete(ctx context.Context, id kernel.UUID) error
}
