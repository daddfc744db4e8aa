package handling

import (
	"slices"
	"strings"
)

// History is the set of handling events recorded for one cargo, in any order.
type History struct {
	events []Event
}

// EmptyHistory has no events.
var EmptyHistory = History{}

func NewHistory(events []Event) History {
	return History{events: slices.Clone(events)}
}

// DistinctEventsByCompletionTime orders events by completion time and keeps one event
// per completion time. On a tie the event registered first wins; equal registration
// times fall back to the identifier so that the result does not depend on input order.
func (h History) DistinctEventsByCompletionTime() []Event {
	sorted := slices.Clone(h.events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		if c := a.completionTime.Compare(b.completionTime); c != 0 {
			return c
		}
		if c := a.registrationTime.Compare(b.registrationTime); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})

	return slices.CompactFunc(sorted, func(a, b Event) bool {
		return a.completionTime.Equal(b.completionTime)
	})
}

// MostRecentlyCompletedEvent returns the last element of DistinctEventsByCompletionTime.
func (h History) MostRecentlyCompletedEvent() (Event, bool) {
	distinct := h.DistinctEventsByCompletionTime()
	if len(distinct) == 0 {
		return Event{}, false
	}
	return distinct[len(distinct)-1], true
}

func (h History) Len() int {
	return len(h.events)
}
