package shipment

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// ServiceType represents the freight service a shipment travels under.
// Like Status, it is a value object whose String form is the upper-snake
// wire token that round-trips exactly through the API and the database.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeRoad is ground freight.
	ServiceTypeRoad

	// ServiceTypeAir is air freight.
	ServiceTypeAir

	// ServiceTypeSea is sea freight.
	ServiceTypeSea

	// ServiceTypeDoorToDoor is a combined pickup-to-delivery service.
	ServiceTypeDoorToDoor
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown:    "UNKNOWN",
		ServiceTypeRoad:       "ROAD",
		ServiceTypeAir:        "AIR",
		ServiceTypeSea:        "SEA",
		ServiceTypeDoorToDoor: "DOOR_TO_DOOR",
	}
}

// ServiceTypeFromString parses a wire token ("ROAD", "DOOR_TO_DOOR", ...)
// into a ServiceType. Returns an error for unrecognized tokens.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for serviceType, token := range getServiceTypeStrings() {
		if token == s && serviceType != ServiceTypeUnknown {
			return serviceType, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"serviceType", fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks if the ServiceType value is valid.
func (t ServiceType) Validate() error {
	if _, ok := getServiceTypeStrings()[t]; !ok || t == ServiceTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType", fmt.Errorf("%d is not a valid service type", int(t)))
	}
	return nil
}

// String returns the wire token for the service type. For invalid values it
// returns "UNKNOWN". Implements fmt.Stringer.
func (t ServiceType) String() string {
	if token, ok := getServiceTypeStrings()[t]; ok {
		return token
	}
	return "UNKNOWN"
}
