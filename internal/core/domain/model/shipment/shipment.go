package shipment

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// Domain errors for shipment construction and mutation.
var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrTrackingIDIsRequired is returned when a shipment is created without
	// a tracking identifier.
	ErrTrackingIDIsRequired = errs.NewValueIsRequiredError("trackingId")

	// ErrStatusHistoryIsEmpty is returned when a shipment is restored with
	// no status history. History is seeded at creation and append-only, so
	// an empty history can only mean corrupted persistence.
	ErrStatusHistoryIsEmpty = errs.NewValueIsRequiredError("statusHistory")

	// ErrAmountIsNegative is returned when a pricing update carries a
	// negative amount.
	ErrAmountIsNegative = errs.NewValueIsInvalidError("amount")
)

// Details groups the descriptive attributes of a shipment: the route, the
// package descriptors, and the contact fields. They are set at creation and
// carry no lifecycle behavior of their own.
type Details struct {
	PickupLocation      string
	DestinationLocation string
	PackageType         string
	Weight              string
	Dimensions          string
	Phone               string
	ReceiverPhone       string
}

func (d Details) validate() error {
	return errors.Join(
		requireField("pickupLocation", d.PickupLocation),
		requireField("destinationLocation", d.DestinationLocation),
		requireField("packageType", d.PackageType),
		requireField("weight", d.Weight),
		requireField("dimensions", d.Dimensions),
		requireField("phone", d.Phone),
	)
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Shipment represents one freight movement from pickup to destination.
// It is the aggregate root that owns the status lifecycle and the derived
// audit trail: status history, checkpoints, and internal notes.
//
// Shipment maintains these invariants:
//   - statusHistory is never empty: it is seeded with the initial status at
//     creation and only ever appended to
//   - status always equals the status of the most recently appended history
//     item
//   - trackingId is immutable after creation
//   - amount is never negative
//   - owned collections (history, checkpoints, notes) hold immutable records
//     appended in call order
//
// The customer is a weak reference held by id only; its lifecycle is managed
// externally. The struct uses private fields and can only be created through
// NewShipment or RestoreShipment.
type Shipment struct {
	// id is the opaque, stable identifier of the shipment
	id kernel.UUID

	// trackingID is the human-facing identifier, unique and immutable
	trackingID string

	// customerID is a weak reference to the owning customer
	customerID kernel.UUID

	// serviceType is the freight service the shipment travels under
	serviceType ServiceType

	// status is the current lifecycle state
	status Status

	// details holds route, package, and contact attributes
	details Details

	// amount is the agreed price in currency minor units
	amount int64

	createdAt time.Time
	updatedAt time.Time

	// statusHistory records every lifecycle transition, oldest first
	statusHistory []*StatusHistoryItem

	// checkpoints records operational location updates, oldest first
	checkpoints []*Checkpoint

	// notes records internal annotations, oldest first
	notes []*Note

	// guard ensures the shipment was properly constructed
	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in StatusPending and seeds its status
// history with a single Pending entry dated now, establishing the invariant
// that history is never empty and always ends in the current status.
//
// All identity and detail fields are validated; validation failures are
// aggregated into a single error.
func NewShipment(
	id kernel.UUID,
	trackingID string,
	customerID kernel.UUID,
	serviceType ServiceType,
	details Details,
	now time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		validateTrackingID(trackingID),
		customerID.Validate(),
		serviceType.Validate(),
		details.validate(),
	); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, ErrTimestampIsRequired
	}

	seed, err := NewStatusHistoryItem(kernel.NewUUID(), StatusPending, now, "", "")
	if err != nil {
		return nil, err
	}

	return &Shipment{
		id:            id,
		trackingID:    trackingID,
		customerID:    customerID,
		serviceType:   serviceType,
		status:        StatusPending,
		details:       details,
		createdAt:     now,
		updatedAt:     now,
		statusHistory: []*StatusHistoryItem{seed},
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreShipment rehydrates a shipment from persistence without re-seeding
// history. It re-checks the aggregate invariants so that corrupted rows are
// rejected at the boundary: the status must be valid, the history must be
// non-empty, and the last history entry must match the current status.
// History is authoritative and is never synthesized from the current status.
func RestoreShipment(
	id kernel.UUID,
	trackingID string,
	customerID kernel.UUID,
	serviceType ServiceType,
	status Status,
	details Details,
	amount int64,
	createdAt time.Time,
	updatedAt time.Time,
	statusHistory []*StatusHistoryItem,
	checkpoints []*Checkpoint,
	notes []*Note,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		validateTrackingID(trackingID),
		customerID.Validate(),
		serviceType.Validate(),
		status.Validate(),
		details.validate(),
	); err != nil {
		return nil, err
	}

	if amount < 0 {
		return nil, ErrAmountIsNegative
	}
	if len(statusHistory) == 0 {
		return nil, ErrStatusHistoryIsEmpty
	}
	if last := statusHistory[len(statusHistory)-1]; last.Status() != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("statusHistory",
			errors.New("last history entry does not match current status"))
	}

	return &Shipment{
		id:            id,
		trackingID:    trackingID,
		customerID:    customerID,
		serviceType:   serviceType,
		status:        status,
		details:       details,
		amount:        amount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		statusHistory: statusHistory,
		checkpoints:   checkpoints,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func validateTrackingID(trackingID string) error {
	if trackingID == "" {
		return ErrTrackingIDIsRequired
	}
	return nil
}

// Validate ensures the Shipment instance was properly constructed.
// Returns ErrShipmentIsNotConstructed for zero-value or literal structs.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ChangeStatus applies a lifecycle transition to the shipment.
//
// The transition is validated against the shipment's current status via the
// lifecycle graph; rejected requests leave the shipment completely
// unchanged. On success exactly one StatusHistoryItem is appended with the
// target status, the given timestamp, and the optional actor and note, and
// the shipment's status and updatedAt are set. No other field is touched.
//
// Returns the appended history item, or a typed rejection:
// ErrSameStatus, ErrInvalidTransition, or a validation error for malformed
// actor or note input.
func (s *Shipment) ChangeStatus(target Status, adminName, note string, now time.Time) (*StatusHistoryItem, error) {
	if err := s.status.CanTransitionTo(target); err != nil {
		return nil, err
	}

	item, err := NewStatusHistoryItem(kernel.NewUUID(), target, now, adminName, note)
	if err != nil {
		return nil, err
	}

	s.statusHistory = append(s.statusHistory, item)
	s.status = target
	s.updatedAt = now
	return item, nil
}

// AddCheckpoint appends one operational location update to the shipment.
// The record is immutable and appended in call order; the status and the
// status history are not touched. Returns the created checkpoint or a
// validation error for empty required fields.
func (s *Shipment) AddCheckpoint(location, description, adminName string, now time.Time) (*Checkpoint, error) {
	checkpoint, err := NewCheckpoint(kernel.NewUUID(), location, description, now, adminName)
	if err != nil {
		return nil, err
	}

	s.checkpoints = append(s.checkpoints, checkpoint)
	s.updatedAt = now
	return checkpoint, nil
}

// AddNote appends one internal annotation to the shipment.
// The record is immutable and appended in call order; the status and the
// status history are not touched. Returns the created note or a validation
// error for empty text.
func (s *Shipment) AddNote(text, adminName string, now time.Time) (*Note, error) {
	note, err := NewNote(kernel.NewUUID(), text, now, adminName)
	if err != nil {
		return nil, err
	}

	s.notes = append(s.notes, note)
	s.updatedAt = now
	return note, nil
}

// ChangeAmount updates the shipment price independent of the status
// lifecycle. The amount must be non-negative. Only amount and updatedAt
// change; no history entry is produced.
func (s *Shipment) ChangeAmount(amount int64, now time.Time) error {
	if amount < 0 {
		return ErrAmountIsNegative
	}

	s.amount = amount
	s.updatedAt = now
	return nil
}

// NextStatuses returns the lifecycle states this shipment can transition to
// from its current status. Empty for terminal states.
func (s *Shipment) NextStatuses() []Status {
	return s.status.NextStatuses()
}

// ID returns the shipment's opaque identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingID returns the human-facing tracking identifier.
func (s *Shipment) TrackingID() string {
	return s.trackingID
}

// CustomerID returns the weak reference to the owning customer.
func (s *Shipment) CustomerID() kernel.UUID {
	return s.customerID
}

// ServiceType returns the freight service type.
func (s *Shipment) ServiceType() ServiceType {
	return s.serviceType
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// Details returns the route, package, and contact attributes.
func (s *Shipment) Details() Details {
	return s.details
}

// Amount returns the agreed price in currency minor units.
func (s *Shipment) Amount() int64 {
	return s.amount
}

// CreatedAt returns the creation time.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// StatusHistory returns the transition records, oldest first.
// The returned slice must not be modified.
func (s *Shipment) StatusHistory() []*StatusHistoryItem {
	return s.statusHistory
}

// Checkpoints returns the operational updates, oldest first.
// The returned slice must not be modified.
func (s *Shipment) Checkpoints() []*Checkpoint {
	return s.checkpoints
}

// Notes returns the internal annotations, oldest first.
// The returned slice must not be modified.
func (s *Shipment) Notes() []*Note {
	return s.notes
}
