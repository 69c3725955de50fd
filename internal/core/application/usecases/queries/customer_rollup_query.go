package queries

import (
	"errors"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCustomerRollupQueryIsNotConstructed = errors.New(
		"CustomerRollupQuery must be created via NewCustomerRollupQuery constructor",
	)
)

// CustomerRollupQuery computes a per-customer summary of the shipment
// collection for the back-office dashboard. Shipments are grouped by
// customer identity (lower-cased email, falling back to the customer name
// when no email is on record) and each group reports its totals and its
// most recent shipment.
type CustomerRollupQuery struct {
	guard guard.ConstructorGuard
}

// NewCustomerRollupQuery creates a parameterless rollup query.
func NewCustomerRollupQuery() CustomerRollupQuery {
	return CustomerRollupQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CustomerRollupQuery) Validate() error {
	return q.guard.Validate(ErrCustomerRollupQueryIsNotConstructed)
}

// CustomerRollupRow is one shipment joined with its customer snapshot, the
// input shape of the rollup fold.
type CustomerRollupRow struct {
	ShipmentID    kernel.UUID
	TrackingID    string
	Status        shipment.Status
	CreatedAt     time.Time
	CustomerName  string
	CustomerEmail string
}

// CustomerRollupQueryResponse is one customer group in the rollup.
type CustomerRollupQueryResponse struct {
	CustomerName   string
	CustomerEmail  string
	TotalCount     int
	ActiveCount    int
	LatestShipment CustomerRollupLatestShipment
}

// CustomerRollupLatestShipment identifies the most recently created
// shipment of a customer group.
type CustomerRollupLatestShipment struct {
	ID         kernel.UUID
	TrackingID string
	Status     shipment.Status
	CreatedAt  time.Time
}

// FoldCustomerRollup groups shipment rows by customer identity and computes
// the per-group summary. It is a pure function of the input slice:
//   - the group key is the lower-cased customer email, or the customer name
//     when the email is empty
//   - active counts shipments whose status is not terminal
//   - the latest shipment is the one with the greatest CreatedAt; on equal
//     timestamps the later row in the input wins, so the result is
//     deterministic for a given input order
//
// Groups are returned in first-appearance order.
func FoldCustomerRollup(rows []CustomerRollupRow) []CustomerRollupQueryResponse {
	groups := make([]CustomerRollupQueryResponse, 0)
	index := make(map[string]int)

	for _, row := range rows {
		key := strings.ToLower(row.CustomerEmail)
		if key == "" {
			key = row.CustomerName
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CustomerRollupQueryResponse{
				CustomerName:  row.CustomerName,
				CustomerEmail: row.CustomerEmail,
			})
		}

		group := &groups[i]
		group.TotalCount++
		if !row.Status.IsTerminal() {
			group.ActiveCount++
		}
		if group.TotalCount == 1 || !row.CreatedAt.Before(group.LatestShipment.CreatedAt) {
			group.LatestShipment = CustomerRollupLatestShipment{
				ID:         row.ShipmentID,
				TrackingID: row.TrackingID,
				Status:     row.Status,
				CreatedAt:  row.CreatedAt,
			}
		}
	}

	return groups
}
