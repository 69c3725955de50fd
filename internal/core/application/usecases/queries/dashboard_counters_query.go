package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrDashboardCountersQueryIsNotConstructed = errors.New(
		"DashboardCountersQuery must be created via NewDashboardCountersQuery constructor",
	)
)

// DashboardCountersQuery retrieves the headline numbers for the back-office
// dashboard: the total shipment count and the count per lifecycle status.
type DashboardCountersQuery struct {
	guard guard.ConstructorGuard
}

// NewDashboardCountersQuery creates a parameterless counters query.
func NewDashboardCountersQuery() DashboardCountersQuery {
	return DashboardCountersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q DashboardCountersQuery) Validate() error {
	return q.guard.Validate(ErrDashboardCountersQueryIsNotConstructed)
}

// DashboardCountersQueryResponse carries the dashboard counters.
// ByStatus always holds an entry for every lifecycle status, zero-filled
// when no shipment is in that status.
type DashboardCountersQueryResponse struct {
	Total    int64
	ByStatus map[shipment.Status]int64
}
