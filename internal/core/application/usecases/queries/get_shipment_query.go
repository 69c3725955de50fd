package queries

import (
	"errors"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery or NewGetShipmentQueryByTrackingID",
	)
)

// GetShipmentQuery retrieves one shipment with its full audit trail:
// status history, checkpoints, notes, and a read-only snapshot of the
// customer the shipment references.
//
// The query addresses the shipment either by its id (back-office screens)
// or by its public tracking id (the customer-facing tracking page).
//
// Example:
//
//	query, err := queries.NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//	found, err := handler.Handle(ctx, query)
type GetShipmentQuery struct {
	guard guard.ConstructorGuard

	id         kernel.UUID
	trackingID string
}

// NewGetShipmentQuery creates a query addressing a shipment by id.
func NewGetShipmentQuery(id kernel.UUID) (GetShipmentQuery, error) {
	if err := id.Validate(); err != nil {
		return GetShipmentQuery{}, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	return GetShipmentQuery{guard: guard.NewConstructorGuard(), id: id}, nil
}

// NewGetShipmentQueryByTrackingID creates a query addressing a shipment by
// its human-facing tracking identifier.
func NewGetShipmentQueryByTrackingID(trackingID string) (GetShipmentQuery, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("trackingId")
	}
	return GetShipmentQuery{guard: guard.NewConstructorGuard(), trackingID: trackingID}, nil
}

// ID returns the shipment id, zero when the query addresses by tracking id.
func (q GetShipmentQuery) ID() kernel.UUID {
	return q.id
}

// TrackingID returns the tracking id, empty when the query addresses by id.
func (q GetShipmentQuery) TrackingID() string {
	return q.trackingID
}

// Validate ensures the query was created through a constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentSummaryResponse is the flat shipment read model shared by the get
// and list queries. Enum values carry their wire tokens.
type ShipmentSummaryResponse struct {
	ID                  kernel.UUID
	TrackingID          string
	CustomerID          kernel.UUID
	ServiceType         shipment.ServiceType
	Status              shipment.Status
	PickupLocation      string
	DestinationLocation string
	PackageType         string
	Weight              string
	Dimensions          string
	Phone               string
	ReceiverPhone       string
	Amount              int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CustomerSnapshotResponse is the read-only customer projection attached to
// a shipment. Customers are managed outside this service; only the fields
// needed to render the shipment are exposed.
type CustomerSnapshotResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// StatusHistoryItemResponse is one audit-trail entry in the read model.
type StatusHistoryItemResponse struct {
	ID        kernel.UUID
	Status    shipment.Status
	AdminName string
	Note      string
	Timestamp time.Time
}

// CheckpointResponse is one transit checkpoint in the read model.
type CheckpointResponse struct {
	ID          kernel.UUID
	Location    string
	Description string
	AdminName   string
	Timestamp   time.Time
}

// NoteResponse is one internal note in the read model.
type NoteResponse struct {
	ID        kernel.UUID
	Text      string
	AdminName string
	Timestamp time.Time
}

// GetShipmentQueryResponse is the full shipment read model: the summary,
// the customer snapshot (nil when the referenced customer no longer exists),
// the owned collections in append order, and the legal next statuses.
type GetShipmentQueryResponse struct {
	ShipmentSummaryResponse

	Customer      *CustomerSnapshotResponse
	StatusHistory []StatusHistoryItemResponse
	Checkpoints   []CheckpointResponse
	Notes         []NoteResponse
	NextStatuses  []shipment.Status
}
