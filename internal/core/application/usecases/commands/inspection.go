package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/core/ports"
)

// inspectCargo re-derives the delivery of c from its full handling history, queues
// the misdirected and arrived signals that apply, and stores the cargo.
// c must have been loaded with GetForUpdate in the same unit of work.
func inspectCargo(ctx context.Context, uow InspectionUoW, c *cargo.Cargo, logger *slog.Logger) error {
	history, err := uow.HandlingEventRepository().LookupHandlingHistoryOfCargo(ctx, c.TrackingID())
	if err != nil {
		return fmt.Errorf("lookup handling history of %s: %w", c.TrackingID(), err)
	}

	c.DeriveDeliveryProgress(history)
	delivery := c.Delivery()
	now := time.Now()

	if delivery.IsMisdirected() {
		logger.WarnContext(ctx, "cargo is misdirected",
			"trackingId", c.TrackingID().String(),
			"lastKnownLocation", delivery.LastKnownLocation().String())
		if err = raise(ctx, uow.OutboxRepository(), signal.CargoMisdirected, c.TrackingID(), now); err != nil {
			return err
		}
	}

	if delivery.IsUnloadedAtDestination() {
		logger.InfoContext(ctx, "cargo has arrived",
			"trackingId", c.TrackingID().String(),
			"destination", c.RouteSpecification().Destination().String())
		if err = raise(ctx, uow.OutboxRepository(), signal.CargoArrived, c.TrackingID(), now); err != nil {
			return err
		}
	}

	return uow.CargoRepository().Update(ctx, c)
}

func raise(ctx context.Context, outbox ports.OutboxRepository, kind signal.Kind, trackingID kernel.TrackingID, at time.Time) error {
	s, err := signal.NewSignal(kind, trackingID, at)
	if err != nil {
		return err
	}
	if err = outbox.Add(ctx, s); err != nil {
		return fmt.Errorf("queue %s signal for %s: %w", kind, trackingID, err)
	}
	return nil
}

// lockingCargoFinder resolves cargo with a row lock held until the unit of work ends
// and remembers the cargo it locked last.
type lockingCargoFinder struct {
	repo   ports.CargoRepository
	locked *cargo.Cargo
}

func (f *lockingCargoFinder) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	c, err := f.repo.GetForUpdate(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	f.locked = c
	return c, nil
}
