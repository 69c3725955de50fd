package shipment

import (
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrNoteTextIsRequired is returned when a note is created with empty or
// whitespace-only text.
var ErrNoteTextIsRequired = errs.NewValueIsRequiredError("text")

// Note is a free-text internal annotation on a shipment, independent of the
// status lifecycle. Notes are append-only and immutable once created.
type Note struct {
	id        kernel.UUID
	text      string
	timestamp time.Time
	adminName string
}

// NewNote creates an immutable note record. Text is required and trimmed of
// surrounding whitespace; whitespace-only values are rejected.
func NewNote(id kernel.UUID, text string, timestamp time.Time, adminName string) (*Note, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoteTextIsRequired
	}
	if len(text) > maxFreeTextLength {
		return nil, errs.NewValueIsOutOfRangeError("text", len(text), 1, maxFreeTextLength)
	}

	if timestamp.IsZero() {
		return nil, ErrTimestampIsRequired
	}
	if len(adminName) > maxAdminNameLength {
		return nil, errs.NewValueIsOutOfRangeError("adminName", len(adminName), 0, maxAdminNameLength)
	}

	return &Note{
		id:        id,
		text:      text,
		timestamp: timestamp,
		adminName: adminName,
	}, nil
}

// ID returns the record's unique identifier.
func (n *Note) ID() kernel.UUID {
	return n.id
}

// Text returns the annotation body.
func (n *Note) Text() string {
	return n.text
}

// Timestamp returns when the note was recorded.
func (n *Note) Timestamp() time.Time {
	return n.timestamp
}

// AdminName returns the actor who wrote the note, or an empty string when it
// was not recorded.
func (n *Note) AdminName() string {
	return n.adminName
}
