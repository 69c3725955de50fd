package queries_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboardCountersQuery_Valid(t *testing.T) {
	query := queries.NewDashboardCountersQuery()
	require.NoError(t, query.Validate())
}

func TestDashboardCountersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.DashboardCountersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrDashboardCountersQueryIsNotConstructed)
}
