package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// DashboardCountersQueryHandler computes the dashboard counters in a single
// grouped pass over the shipments table.
type DashboardCountersQueryHandler struct {
	db *gorm.DB
}

// NewDashboardCountersQueryHandler creates a handler for the counters query.
// Requires a GORM database connection for query execution.
func NewDashboardCountersQueryHandler(db *gorm.DB) DashboardCountersQueryHandler {
	return DashboardCountersQueryHandler{db: db}
}

// Handle executes the counters query. Every lifecycle status appears in the
// response, zero-filled when absent from the table.
func (h DashboardCountersQueryHandler) Handle(
	ctx context.Context,
	query DashboardCountersQuery,
) (DashboardCountersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardCountersQueryResponse{}, err
	}

	response := DashboardCountersQueryResponse{
		ByStatus: make(map[shipment.Status]int64, len(shipment.AllStatuses())),
	}
	for _, status := range shipment.AllStatuses() {
		response.ByStatus[status] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM shipments
		GROUP BY status
	`).Rows()
	if err != nil {
		return DashboardCountersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var token string
		var count int64

		if err = rows.Scan(&token, &count); err != nil {
			return DashboardCountersQueryResponse{}, err
		}

		status, statusErr := shipment.StatusFromString(token)
		if statusErr != nil {
			return DashboardCountersQueryResponse{}, statusErr
		}
		response.ByStatus[status] = count
		response.Total += count
	}

	if err = rows.Err(); err != nil {
		return DashboardCountersQueryResponse{}, err
	}

	return response, nil
}
