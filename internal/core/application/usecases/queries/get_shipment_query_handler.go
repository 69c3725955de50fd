package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler loads one shipment read model from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern: the
// shipment row, the customer snapshot, and the three owned collections are
// fetched in separate ordered queries.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query and returns the full shipment read model.
// Returns errs.ObjectNotFoundError when no shipment matches.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	where, arg := "s.id = ?", any(query.ID().Bytes())
	if query.TrackingID() != "" {
		where, arg = "s.tracking_id = ?", any(query.TrackingID())
	}

	response, err := h.loadShipment(ctx, where, arg)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	response.StatusHistory, err = h.loadHistory(ctx, response.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.Checkpoints, err = h.loadCheckpoints(ctx, response.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.Notes, err = h.loadNotes(ctx, response.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.NextStatuses = response.Status.NextStatuses()

	return response, nil
}

func (h GetShipmentQueryHandler) loadShipment(
	ctx context.Context,
	where string,
	arg any,
) (GetShipmentQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_id,
			s.customer_id,
			s.service_type,
			s.status,
			s.pickup_location,
			s.destination_location,
			s.package_type,
			s.weight,
			s.dimensions,
			s.phone,
			s.receiver_phone,
			s.amount,
			s.created_at,
			s.updated_at,
			c.id,
			c.name,
			c.email,
			c.phone
		FROM shipments s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE `+where, arg).Row()

	var response GetShipmentQueryResponse
	var id, customerID uuid.UUID
	var serviceType, status string
	var custID uuid.NullUUID
	var custName, custEmail, custPhone sql.NullString

	err := row.Scan(
		&id,
		&response.TrackingID,
		&customerID,
		&serviceType,
		&status,
		&response.PickupLocation,
		&response.DestinationLocation,
		&response.PackageType,
		&response.Weight,
		&response.Dimensions,
		&response.Phone,
		&response.ReceiverPhone,
		&response.Amount,
		&response.CreatedAt,
		&response.UpdatedAt,
		&custID,
		&custName,
		&custEmail,
		&custPhone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("shipment", arg, err)
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if response.ServiceType, err = shipment.ServiceTypeFromString(serviceType); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if response.Status, err = shipment.StatusFromString(status); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if custID.Valid {
		snapshotID, idErr := kernel.UUIDFromBytes(custID.UUID[:])
		if idErr != nil {
			return GetShipmentQueryResponse{}, idErr
		}
		response.Customer = &CustomerSnapshotResponse{
			ID:    snapshotID,
			Name:  custName.String,
			Email: custEmail.String,
			Phone: custPhone.String,
		}
	}

	return response, nil
}

func (h GetShipmentQueryHandler) loadHistory(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]StatusHistoryItemResponse, error) {
	items := make([]StatusHistoryItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, status, admin_name, note, created_at
		FROM shipment_status_history
		WHERE shipment_id = ?
		ORDER BY position
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item StatusHistoryItemResponse
		var id uuid.UUID
		var status string

		if err = rows.Scan(&id, &status, &item.AdminName, &item.Note, &item.Timestamp); err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.Status, err = shipment.StatusFromString(status); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetShipmentQueryHandler) loadCheckpoints(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]CheckpointResponse, error) {
	checkpoints := make([]CheckpointResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, location, description, admin_name, created_at
		FROM shipment_checkpoints
		WHERE shipment_id = ?
		ORDER BY position
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var checkpoint CheckpointResponse
		var id uuid.UUID

		err = rows.Scan(&id, &checkpoint.Location, &checkpoint.Description,
			&checkpoint.AdminName, &checkpoint.Timestamp)
		if err != nil {
			return nil, err
		}
		if checkpoint.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, checkpoint)
	}

	return checkpoints, rows.Err()
}

func (h GetShipmentQueryHandler) loadNotes(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]NoteResponse, error) {
	notes := make([]NoteResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, text, admin_name, created_at
		FROM shipment_notes
		WHERE shipment_id = ?
		ORDER BY position
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var note NoteResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &note.Text, &note.AdminName, &note.Timestamp); err != nil {
			return nil, err
		}
		if note.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}
