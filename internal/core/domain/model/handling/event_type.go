package handling

import (
	"fmt"
	"strings"

	"cargotracker/internal/pkg/errs"
)

// EventType is the kind of real-world occurrence a handling event records.
type EventType int

const (
	Receive EventType = iota + 1
	Load
	Unload
	Customs
	Claim
)

var eventTypeNames = map[EventType]string{
	Receive: "RECEIVE",
	Load:    "LOAD",
	Unload:  "UNLOAD",
	Customs: "CUSTOMS",
	Claim:   "CLAIM",
}

// EventTypes lists every event type in declaration order.
func EventTypes() []EventType {
	return []EventType{Receive, Load, Unload, Customs, Claim}
}

// ParseEventType accepts the names returned by String, case-insensitively.
func ParseEventType(s string) (EventType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range eventTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("eventType", fmt.Errorf("unknown handling event type %q", s))
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// RequiresVoyage reports whether events of this type must name a voyage.
// LOAD and UNLOAD require one; every other type forbids it.
func (t EventType) RequiresVoyage() bool {
	return t == Load || t == Unload
}

func (t EventType) IsValid() bool {
	_, ok := eventTypeNames[t]
	return ok
}
