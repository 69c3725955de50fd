package shipment

import (
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// Required-field errors for checkpoint creation.
var (
	ErrCheckpointLocationIsRequired    = errs.NewValueIsRequiredError("location")
	ErrCheckpointDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// Checkpoint is an operational location update logged against a shipment,
// typically while it is in transit. Checkpoints are append-only and
// immutable once created; they never affect the status lifecycle.
type Checkpoint struct {
	id          kernel.UUID
	location    string
	description string
	timestamp   time.Time
	adminName   string
}

// NewCheckpoint creates an immutable checkpoint record. Location and
// description are required and trimmed of surrounding whitespace;
// whitespace-only values are rejected.
func NewCheckpoint(
	id kernel.UUID,
	location string,
	description string,
	timestamp time.Time,
	adminName string,
) (*Checkpoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrCheckpointLocationIsRequired
	}
	if len(location) > maxLocationLength {
		return nil, errs.NewValueIsOutOfRangeError("location", len(location), 1, maxLocationLength)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrCheckpointDescriptionIsRequired
	}
	if len(description) > maxFreeTextLength {
		return nil, errs.NewValueIsOutOfRangeError("description", len(description), 1, maxFreeTextLength)
	}

	if timestamp.IsZero() {
		return nil, ErrTimestampIsRequired
	}
	if len(adminName) > maxAdminNameLength {
		return nil, errs.NewValueIsOutOfRangeError("adminName", len(adminName), 0, maxAdminNameLength)
	}

	return &Checkpoint{
		id:          id,
		location:    location,
		description: description,
		timestamp:   timestamp,
		adminName:   adminName,
	}, nil
}

// ID returns the record's unique identifier.
func (c *Checkpoint) ID() kernel.UUID {
	return c.id
}

// Location returns where the update was recorded.
func (c *Checkpoint) Location() string {
	return c.location
}

// Description returns what happened at the location.
func (c *Checkpoint) Description() string {
	return c.description
}

// Timestamp returns when the checkpoint was recorded.
func (c *Checkpoint) Timestamp() time.Time {
	return c.timestamp
}

// AdminName returns the actor who recorded the checkpoint, or an empty
// string when it was not recorded.
func (c *Checkpoint) AdminName() string {
	return c.adminName
}
