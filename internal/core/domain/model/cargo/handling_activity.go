package cargo

import (
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// NoActivity means nothing further is expected to happen to the cargo.
var NoActivity = HandlingActivity{}

// HandlingActivity is a handling the cargo is expected to go through next.
// Voyage is set for LOAD and UNLOAD only. HandlingActivity values are comparable with ==.
type HandlingActivity struct {
	Type     handling.EventType
	Location kernel.UnLocode
	Voyage   kernel.VoyageNumber
}

func (a HandlingActivity) IsEmpty() bool {
	return a == NoActivity
}
