package shipment

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// Field length limits for audit records. Anything longer is rejected as a
// validation error rather than silently truncated.
const (
	maxAdminNameLength = 120
	maxFreeTextLength  = 2000
	maxLocationLength  = 255
)

// ErrTimestampIsRequired is returned when an audit record is created without
// a timestamp.
var ErrTimestampIsRequired = errs.NewValueIsRequiredError("timestamp")

// StatusHistoryItem records one status transition of a shipment: the state
// entered, when it was entered, and optionally who performed the transition
// and why. Items are created exactly once per successful transition and are
// immutable thereafter. The shipment aggregate owns the collection and only
// ever appends to it.
type StatusHistoryItem struct {
	id        kernel.UUID
	status    Status
	timestamp time.Time
	adminName string
	note      string
}

// NewStatusHistoryItem creates an immutable status transition record.
// The status must be a valid lifecycle state and the timestamp must be set;
// adminName and note are optional but length-limited.
func NewStatusHistoryItem(
	id kernel.UUID,
	status Status,
	timestamp time.Time,
	adminName string,
	note string,
) (*StatusHistoryItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if timestamp.IsZero() {
		return nil, ErrTimestampIsRequired
	}
	if len(adminName) > maxAdminNameLength {
		return nil, errs.NewValueIsOutOfRangeError("adminName", len(adminName), 0, maxAdminNameLength)
	}
	if len(note) > maxFreeTextLength {
		return nil, errs.NewValueIsOutOfRangeError("note", len(note), 0, maxFreeTextLength)
	}

	return &StatusHistoryItem{
		id:        id,
		status:    status,
		timestamp: timestamp,
		adminName: adminName,
		note:      note,
	}, nil
}

// ID returns the record's unique identifier.
func (i *StatusHistoryItem) ID() kernel.UUID {
	return i.id
}

// Status returns the lifecycle state entered by this transition.
func (i *StatusHistoryItem) Status() Status {
	return i.status
}

// Timestamp returns when the transition happened.
func (i *StatusHistoryItem) Timestamp() time.Time {
	return i.timestamp
}

// AdminName returns the actor who performed the transition, or an empty
// string when it was not recorded.
func (i *StatusHistoryItem) AdminName() string {
	return i.adminName
}

// Note returns the free-text annotation attached to the transition, or an
// empty string when none was supplied.
func (i *StatusHistoryItem) Note() string {
	return i.note
}
