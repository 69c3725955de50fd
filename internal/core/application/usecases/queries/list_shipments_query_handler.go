package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves shipment summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment list queries.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the list query. Results are sorted newest first and
// narrowed by the query's optional customer and status filters.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			tracking_id,
			customer_id,
			service_type,
			status,
			pickup_location,
			destination_location,
			package_type,
			weight,
			dimensions,
			phone,
			receiver_phone,
			amount,
			created_at,
			updated_at
		FROM shipments
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.CustomerID() != nil {
		stmt += " AND customer_id = ?"
		args = append(args, query.CustomerID().Bytes())
	}
	if query.Status() != nil {
		stmt += " AND status = ?"
		args = append(args, query.Status().String())
	}
	stmt += " ORDER BY created_at DESC, id"

	shipments := make([]ShipmentSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary ShipmentSummaryResponse
		var id, customerID uuid.UUID
		var serviceType, status string

		err = rows.Scan(
			&id,
			&summary.TrackingID,
			&customerID,
			&serviceType,
			&status,
			&summary.PickupLocation,
			&summary.DestinationLocation,
			&summary.PackageType,
			&summary.Weight,
			&summary.Dimensions,
			&summary.Phone,
			&summary.ReceiverPhone,
			&summary.Amount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if summary.ServiceType, err = shipment.ServiceTypeFromString(serviceType); err != nil {
			return nil, err
		}
		if summary.Status, err = shipment.StatusFromString(status); err != nil {
			return nil, err
		}
		shipments = append(shipments, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
