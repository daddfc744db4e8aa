package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// TransportStatus describes where the cargo physically is.
type TransportStatus int

const (
	TransportStatusUnknown TransportStatus = iota
	NotReceived
	InPort
	OnboardCarrier
	Claimed
)

var transportStatusNames = map[TransportStatus]string{
	TransportStatusUnknown: "UNKNOWN",
	NotReceived:            "NOT_RECEIVED",
	InPort:                 "IN_PORT",
	OnboardCarrier:         "ONBOARD_CARRIER",
	Claimed:                "CLAIMED",
}

func (s TransportStatus) String() string {
	if name, ok := transportStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TransportStatus(%d)", int(s))
}

func ParseTransportStatus(s string) (TransportStatus, error) {
	for status, name := range transportStatusNames {
		if name == s {
			return status, nil
		}
	}
	return TransportStatusUnknown, errs.NewValueIsInvalidErrorWithCause("transportStatus",
		fmt.Errorf("unknown transport status %q", s))
}

// RoutingStatus describes how the assigned itinerary relates to the route specification.
type RoutingStatus int

const (
	NotRouted RoutingStatus = iota + 1
	Routed
	Misrouted
)

var routingStatusNames = map[RoutingStatus]string{
	NotRouted: "NOT_ROUTED",
	Routed:    "ROUTED",
	Misrouted: "MISROUTED",
}

func (s RoutingStatus) String() string {
	if name, ok := routingStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("RoutingStatus(%d)", int(s))
}

func ParseRoutingStatus(s string) (RoutingStatus, error) {
	for status, name := range routingStatusNames {
		if name == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("routingStatus", fmt.Errorf("unknown routing status %q", s))
}
