// Package kernel holds the identifiers shared by every aggregate of the cargo
// tracking domain: TrackingID for cargo, UnLocode for locations, VoyageNumber for
// voyages and UUID for entities without a natural key.
//
// All of them are immutable values compared with IsEqual. TrackingID and UnLocode
// embed a guard.ConstructorGuard, so a zero value fails Validate. VoyageNumber is
// different: its zero value is meaningful and stands for "no voyage".
package kernel
