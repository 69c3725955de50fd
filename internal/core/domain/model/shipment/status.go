package shipment

import (
	"errors"
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Transition errors returned by CanTransitionTo. Both wrap through errors.Is
// so callers can classify rejections without string matching.
var (
	// ErrSameStatus is returned when the requested target status equals the
	// shipment's current status.
	ErrSameStatus = errors.New("shipment is already in the requested status")

	// ErrInvalidTransition is returned when the target status is not
	// reachable from the current status in the lifecycle graph.
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct operational workflow.
//
// State transitions:
//
//	Pending ──> Quoted ──> Accepted ──> PickedUp ──> InTransit ──> Delivered
//	   │           │           │            │
//	   └───────────┴───────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no outgoing transitions exist.
// The graph is directed and acyclic, and callers must drive a shipment
// through each intermediate state explicitly; no multi-hop transition is
// ever computed on their behalf.
//
// Status is a value object that validates state transitions and provides the
// wire representation used by both persistence and the REST API.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when a shipment is first created.
	// Shipments in this status are waiting for a price quote.
	StatusPending

	// StatusQuoted indicates a price quote has been issued to the customer.
	StatusQuoted

	// StatusAccepted indicates the customer accepted the quote and the
	// shipment is awaiting pickup.
	StatusAccepted

	// StatusPickedUp indicates the package has been collected from the
	// pickup location.
	StatusPickedUp

	// StatusInTransit indicates the package is moving toward its
	// destination. Checkpoints are primarily recorded in this status.
	StatusInTransit

	// StatusDelivered indicates the package reached its destination.
	// This is a terminal state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the shipment was cancelled before delivery.
	// This is a terminal state with no further transitions allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire tokens.
// The tokens are upper-snake-case and round-trip exactly between the API,
// the database, and the in-memory representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusQuoted:    "QUOTED",
		StatusAccepted:  "ACCEPTED",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// getStatusTransitions returns the allowed-successor set for every valid
// status. This is the single definition of the lifecycle graph: the
// transition validator, NextStatuses, and IsTerminal all consult it, so the
// table is never duplicated elsewhere.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusQuoted, StatusCancelled},
		StatusQuoted:    {StatusAccepted, StatusCancelled},
		StatusAccepted:  {StatusPickedUp, StatusCancelled},
		StatusPickedUp:  {StatusInTransit, StatusCancelled},
		StatusInTransit: {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// AllStatuses returns every valid status in lifecycle order.
// Useful for zero-filling dashboard counters and enumerating filters.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusQuoted,
		StatusAccepted,
		StatusPickedUp,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}
}

// StatusFromString parses a wire token ("PENDING", "IN_TRANSIT", ...) into a
// Status. Returns an error for unrecognized tokens, including "UNKNOWN".
func StatusFromString(s string) (Status, error) {
	for status, token := range getStatusStrings() {
		if token == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the seven lifecycle states; StatusUnknown (0) and any
// other values are invalid. This method is used to ensure Status values from
// external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire token for the status ("PENDING", "PICKED_UP", ...).
// For invalid values it returns "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if token, ok := getStatusStrings()[s]; ok {
		return token
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered and Cancelled are the only terminal states.
func (s Status) IsTerminal() bool {
	next, ok := getStatusTransitions()[s]
	return ok && len(next) == 0
}

// NextStatuses returns the statuses reachable from s in one transition.
// Returns an empty slice for terminal and invalid statuses. The result is a
// copy; callers may modify it freely.
func (s Status) NextStatuses() []Status {
	next := getStatusTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo decides whether a transition from s to target is
// admissible. It is a pure function over (s, target) with no side effects.
//
// Returns:
//   - nil if the transition is allowed
//   - ErrSameStatus (wrapped) if target equals the current status
//   - ErrInvalidTransition (wrapped) if target is not in the allowed set,
//     which covers every transition out of a terminal state
//
// Both statuses must be valid lifecycle states; invalid inputs are rejected
// before the graph is consulted.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == s {
		return fmt.Errorf("%w: %s", ErrSameStatus, s)
	}

	for _, allowed := range getStatusTransitions()[s] {
		if target == allowed {
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}
