package queries

import (
	"context"
	"database/sql"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRollupQueryHandler fetches shipment rows joined with their
// customer snapshots and folds them into the per-customer rollup.
// The fetch is ordered by creation time so the fold's tie-break is
// deterministic across runs.
type CustomerRollupQueryHandler struct {
	db *gorm.DB
}

// NewCustomerRollupQueryHandler creates a handler for the customer rollup.
// Requires a GORM database connection for query execution.
func NewCustomerRollupQueryHandler(db *gorm.DB) CustomerRollupQueryHandler {
	return CustomerRollupQueryHandler{db: db}
}

// Handle executes the rollup query.
func (h CustomerRollupQueryHandler) Handle(
	ctx context.Context,
	query CustomerRollupQuery,
) ([]CustomerRollupQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rollupRows := make([]CustomerRollupRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_id,
			s.status,
			s.created_at,
			c.name,
			c.email
		FROM shipments s
		LEFT JOIN customers c ON c.id = s.customer_id
		ORDER BY s.created_at, s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row CustomerRollupRow
		var id uuid.UUID
		var status string
		var name, email sql.NullString

		if err = rows.Scan(&id, &row.TrackingID, &status, &row.CreatedAt, &name, &email); err != nil {
			return nil, err
		}
		if row.ShipmentID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.Status, err = shipment.StatusFromString(status); err != nil {
			return nil, err
		}
		row.CustomerName = name.String
		row.CustomerEmail = email.String
		rollupRows = append(rollupRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return FoldCustomerRollup(rollupRows), nil
}
