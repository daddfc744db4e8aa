package services

import (
	"context"
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
)

// CargoFinder resolves a tracking id. A missing cargo is reported with an error matching errs.ErrObjectNotFound.
type CargoFinder interface {
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)
}

// VoyageFinder resolves a voyage number. A missing voyage is reported with an error matching errs.ErrObjectNotFound.
type VoyageFinder interface {
	Get(ctx context.Context, number kernel.VoyageNumber) (*voyage.Voyage, error)
}

// LocationFinder resolves an UN/LOCODE. A missing location is reported with an error matching errs.ErrObjectNotFound.
type LocationFinder interface {
	Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error)
}

// HandlingEventFactory turns a registration attempt into a handling event once every
// reference it makes is known.
type HandlingEventFactory struct {
	cargos    CargoFinder
	voyages   VoyageFinder
	locations LocationFinder
}

func NewHandlingEventFactory(cargos CargoFinder, voyages VoyageFinder, locations LocationFinder) *HandlingEventFactory {
	return &HandlingEventFactory{
		cargos:    cargos,
		voyages:   voyages,
		locations: locations,
	}
}

// CreateHandlingEvent resolves the cargo, then the voyage when one is given, then the
// location, and stops at the first failure. Unresolved references fail with
// *handling.UnknownCargoError, *handling.UnknownVoyageError or *handling.UnknownLocationError.
// A voyage given for the wrong event type fails in handling.NewEvent. Lookup errors other
// than "not found" are returned wrapped.
func (f *HandlingEventFactory) CreateHandlingEvent(ctx context.Context, attempt handling.RegistrationAttempt) (handling.Event, error) {
	if _, err := f.cargos.Get(ctx, attempt.TrackingID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return handling.Event{}, &handling.UnknownCargoError{TrackingID: attempt.TrackingID.String(), Cause: err}
		}
		return handling.Event{}, fmt.Errorf("find cargo %s: %w", attempt.TrackingID, err)
	}

	if !attempt.VoyageNumber.IsNone() {
		if _, err := f.voyages.Get(ctx, attempt.VoyageNumber); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return handling.Event{}, &handling.UnknownVoyageError{VoyageNumber: attempt.VoyageNumber.String(), Cause: err}
			}
			return handling.Event{}, fmt.Errorf("find voyage %s: %w", attempt.VoyageNumber, err)
		}
	}

	if _, err := f.locations.Get(ctx, attempt.UnLocode); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return handling.Event{}, &handling.UnknownLocationError{UnLocode: attempt.UnLocode.String(), Cause: err}
		}
		return handling.Event{}, fmt.Errorf("find location %s: %w", attempt.UnLocode, err)
	}

	return handling.NewEvent(
		attempt.TrackingID,
		attempt.EventType,
		attempt.CompletionTime,
		attempt.RegistrationTime,
		attempt.UnLocode,
		attempt.VoyageNumber,
	)
}
