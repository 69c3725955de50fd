package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ListShipmentsQuery retrieves shipment summaries, optionally narrowed to a
// single customer and/or a single status. Nil filters mean "all".
//
// Example:
//
//	status := shipment.StatusInTransit
//	query, err := queries.NewListShipmentsQuery(nil, &status)
//	if err != nil {
//	    return err
//	}
//	shipments, err := handler.Handle(ctx, query)
type ListShipmentsQuery struct {
	guard guard.ConstructorGuard

	customerID *kernel.UUID
	status     *shipment.Status
}

// NewListShipmentsQuery creates a list query with optional filters.
// A non-nil customerID must be a constructed UUID; a non-nil status must be
// a known lifecycle status.
func NewListShipmentsQuery(customerID *kernel.UUID, status *shipment.Status) (ListShipmentsQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListShipmentsQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}

	return ListShipmentsQuery{
		guard:      guard.NewConstructorGuard(),
		customerID: customerID,
		status:     status,
	}, nil
}

// CustomerID returns the customer filter, nil when unset.
func (q ListShipmentsQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Status returns the status filter, nil when unset.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}
