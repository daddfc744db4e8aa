package voyage

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
)

// Builder assembles a voyage one port call at a time.
//
//	v, err := voyage.NewBuilder(number, hongKong).
//	    AddMovement(tokyo, departs, arrives).
//	    AddMovement(newYork, departs2, arrives2).
//	    Build()
type Builder struct {
	number    kernel.VoyageNumber
	departure kernel.UnLocode
	movements []CarrierMovement
	err       error
}

func NewBuilder(number kernel.VoyageNumber, departure kernel.UnLocode) *Builder {
	return &Builder{number: number, departure: departure}
}

// AddMovement sails from the current location to arrival. The first error is kept
// and reported by Build.
func (b *Builder) AddMovement(arrival kernel.UnLocode, departureTime, arrivalTime time.Time) *Builder {
	if b.err != nil {
		return b
	}
	m, err := NewCarrierMovement(b.departure, arrival, departureTime, arrivalTime)
	if err != nil {
		b.err = err
		return b
	}
	b.movements = append(b.movements, m)
	b.departure = arrival
	return b
}

func (b *Builder) Build() (*Voyage, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewVoyage(b.number, b.movements)
}
