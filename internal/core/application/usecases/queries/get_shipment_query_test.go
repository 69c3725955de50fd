package queries_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetShipmentQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.ID().IsEqual(id))
	assert.Empty(t, query.TrackingID())
}

func TestNewGetShipmentQueryByTrackingID_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentQueryByTrackingID("  ST-2024-0001  ")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ST-2024-0001", query.TrackingID())
}

func TestNewGetShipmentQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetShipmentQueryByTrackingID_Empty(t *testing.T) {
	_, err := queries.NewGetShipmentQueryByTrackingID("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
