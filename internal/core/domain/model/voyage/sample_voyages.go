package voyage

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
)

// Sample voyages seeded alongside the sample locations.
var (
	V100 = mustVoyage(NewBuilder(kernel.VoyageNumberFromString("0100S"), kernel.MustUnLocode("CNHKG")).
		AddMovement(kernel.MustUnLocode("JNTKO"), day(3), day(5)).
		AddMovement(kernel.MustUnLocode("USNYC"), day(5).Add(6*time.Hour), day(9)))
	V200 = mustVoyage(NewBuilder(kernel.VoyageNumberFromString("0200T"), kernel.MustUnLocode("USNYC")).
		AddMovement(kernel.MustUnLocode("USCHI"), day(10), day(14)).
		AddMovement(kernel.MustUnLocode("SESTO"), day(15), day(17)))
	V300 = mustVoyage(NewBuilder(kernel.VoyageNumberFromString("0300A"), kernel.MustUnLocode("JNTKO")).
		AddMovement(kernel.MustUnLocode("DEHAM"), day(8), day(12)))
	V400 = mustVoyage(NewBuilder(kernel.VoyageNumberFromString("0400S"), kernel.MustUnLocode("DEHAM")).
		AddMovement(kernel.MustUnLocode("SESTO"), day(14), day(15)))
)

// Samples returns the sample voyages in number order.
func Samples() []*Voyage {
	return []*Voyage{V100, V200, V300, V400}
}

func day(d int) time.Time {
	return time.Date(2009, time.March, d, 0, 0, 0, 0, time.UTC)
}

func mustVoyage(b *Builder) *Voyage {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}
