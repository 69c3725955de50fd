package shipment_test

import (
	"fmt"
	"testing"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowedTargets mirrors the lifecycle table so the tests stay independent of
// the production graph definition.
var allowedTargets = map[shipment.Status][]shipment.Status{
	shipment.StatusPending:   {shipment.StatusQuoted, shipment.StatusCancelled},
	shipment.StatusQuoted:    {shipment.StatusAccepted, shipment.StatusCancelled},
	shipment.StatusAccepted:  {shipment.StatusPickedUp, shipment.StatusCancelled},
	shipment.StatusPickedUp:  {shipment.StatusInTransit, shipment.StatusCancelled},
	shipment.StatusInTransit: {shipment.StatusDelivered},
	shipment.StatusDelivered: {},
	shipment.StatusCancelled: {},
}

func isAllowed(from, to shipment.Status) bool {
	for _, allowed := range allowedTargets[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.StatusUnknown))
		assert.Equal(t, 1, int(shipment.StatusPending))
		assert.Equal(t, 2, int(shipment.StatusQuoted))
		assert.Equal(t, 3, int(shipment.StatusAccepted))
		assert.Equal(t, 4, int(shipment.StatusPickedUp))
		assert.Equal(t, 5, int(shipment.StatusInTransit))
		assert.Equal(t, 6, int(shipment.StatusDelivered))
		assert.Equal(t, 7, int(shipment.StatusCancelled))
	})

	t.Run("AllStatuses lists every valid status once", func(t *testing.T) {
		statuses := shipment.AllStatuses()
		require.Len(t, statuses, 7)

		seen := make(map[shipment.Status]bool)
		for _, status := range statuses {
			require.NoError(t, status.Validate())
			assert.False(t, seen[status], "status %s listed twice", status)
			seen[status] = true
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range shipment.AllStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := shipment.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Status(-1), shipment.Status(8), shipment.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire tokens for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   shipment.Status
			expected string
		}{
			{shipment.StatusPending, "PENDING"},
			{shipment.StatusQuoted, "QUOTED"},
			{shipment.StatusAccepted, "ACCEPTED"},
			{shipment.StatusPickedUp, "PICKED_UP"},
			{shipment.StatusInTransit, "IN_TRANSIT"},
			{shipment.StatusDelivered, "DELIVERED"},
			{shipment.StatusCancelled, "CANCELLED"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", shipment.StatusUnknown.String())
		assert.Equal(t, "UNKNOWN", shipment.Status(-1).String())
		assert.Equal(t, "UNKNOWN", shipment.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range shipment.AllStatuses() {
			parsed, err := shipment.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized tokens", func(t *testing.T) {
		for _, token := range []string{"", "UNKNOWN", "pending", "Picked Up", "SHIPPED"} {
			_, err := shipment.StatusFromString(token)
			require.Error(t, err, "token %q should not parse", token)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should accept exactly the transitions in the lifecycle table", func(t *testing.T) {
		for _, from := range shipment.AllStatuses() {
			for _, to := range shipment.AllStatuses() {
				err := from.CanTransitionTo(to)

				switch {
				case from == to:
					require.ErrorIs(t, err, shipment.ErrSameStatus,
						"%s -> %s should be rejected as same status", from, to)
				case isAllowed(from, to):
					require.NoError(t, err, "%s -> %s should be allowed", from, to)
				default:
					require.ErrorIs(t, err, shipment.ErrInvalidTransition,
						"%s -> %s should be rejected", from, to)
				}
			}
		}
	})

	t.Run("should reject every transition from terminal states", func(t *testing.T) {
		for _, from := range []shipment.Status{shipment.StatusDelivered, shipment.StatusCancelled} {
			for _, to := range shipment.AllStatuses() {
				if to == from {
					continue
				}
				err := from.CanTransitionTo(to)
				require.ErrorIs(t, err, shipment.ErrInvalidTransition)
			}
		}
	})

	t.Run("should reject s -> s for every status", func(t *testing.T) {
		for _, status := range shipment.AllStatuses() {
			err := status.CanTransitionTo(status)
			require.ErrorIs(t, err, shipment.ErrSameStatus)
		}
	})

	t.Run("should reject invalid inputs before consulting the graph", func(t *testing.T) {
		err := shipment.StatusUnknown.CanTransitionTo(shipment.StatusPending)
		require.Error(t, err)
		assert.NotErrorIs(t, err, shipment.ErrInvalidTransition)

		err = shipment.StatusPending.CanTransitionTo(shipment.Status(42))
		require.Error(t, err)
		assert.NotErrorIs(t, err, shipment.ErrInvalidTransition)
	})

	t.Run("should never compute multi-hop transitions", func(t *testing.T) {
		// Pending -> PickedUp is reachable in two hops but must be rejected.
		err := shipment.StatusPending.CanTransitionTo(shipment.StatusPickedUp)
		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.StatusDelivered.IsTerminal())
	assert.True(t, shipment.StatusCancelled.IsTerminal())

	for _, status := range []shipment.Status{
		shipment.StatusPending,
		shipment.StatusQuoted,
		shipment.StatusAccepted,
		shipment.StatusPickedUp,
		shipment.StatusInTransit,
	} {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}

	assert.False(t, shipment.StatusUnknown.IsTerminal())
}

func TestStatus_NextStatuses(t *testing.T) {
	t.Run("should expose the allowed-successor set", func(t *testing.T) {
		for from, expected := range allowedTargets {
			assert.ElementsMatch(t, expected, from.NextStatuses())
		}
	})

	t.Run("should return a copy", func(t *testing.T) {
		next := shipment.StatusPending.NextStatuses()
		require.NotEmpty(t, next)
		next[0] = shipment.StatusDelivered

		assert.Equal(t, shipment.StatusQuoted, shipment.StatusPending.NextStatuses()[0])
	})

	t.Run("should be empty for terminal and invalid statuses", func(t *testing.T) {
		assert.Empty(t, shipment.StatusDelivered.NextStatuses())
		assert.Empty(t, shipment.StatusCancelled.NextStatuses())
		assert.Empty(t, shipment.StatusUnknown.NextStatuses())
	})
}

func TestServiceType(t *testing.T) {
	t.Run("should round-trip every valid service type", func(t *testing.T) {
		for _, serviceType := range []shipment.ServiceType{
			shipment.ServiceTypeRoad,
			shipment.ServiceTypeAir,
			shipment.ServiceTypeSea,
			shipment.ServiceTypeDoorToDoor,
		} {
			require.NoError(t, serviceType.Validate())

			parsed, err := shipment.ServiceTypeFromString(serviceType.String())
			require.NoError(t, err)
			assert.Equal(t, serviceType, parsed)
		}
	})

	t.Run("should use upper-snake wire tokens", func(t *testing.T) {
		assert.Equal(t, "ROAD", shipment.ServiceTypeRoad.String())
		assert.Equal(t, "AIR", shipment.ServiceTypeAir.String())
		assert.Equal(t, "SEA", shipment.ServiceTypeSea.String())
		assert.Equal(t, "DOOR_TO_DOOR", shipment.ServiceTypeDoorToDoor.String())
	})

	t.Run("should reject unrecognized tokens and values", func(t *testing.T) {
		_, err := shipment.ServiceTypeFromString("RAIL")
		require.Error(t, err)

		require.Error(t, shipment.ServiceTypeUnknown.Validate())
		require.Error(t, shipment.ServiceType(9).Validate())
		assert.Equal(t, "UNKNOWN", shipment.ServiceType(9).String())
	})
}
