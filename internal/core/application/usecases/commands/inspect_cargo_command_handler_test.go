package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInspectCargoCommandHandler_Handle(t *testing.T) {
	t.Run("store_the_derived_delivery", func(t *testing.T) {
		ctx := t.Context()
		c := routedCargo(t)
		received, err := commands.NewRegisterHandlingEventCommand(at(2, 1), at(2, 0), testTrackingID, kernel.NoVoyage, handling.Receive, hongKong)
		require.NoError(t, err)
		cmd, err := commands.NewInspectCargoCommand(testTrackingID)
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", mock.Anything).Return(nil).Once(),
			r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(c, nil).Once(),
			r.events.On("LookupHandlingHistoryOfCargo", mock.Anything, testTrackingID).
				Return(historyOf(t, received.Attempt()), nil).Once(),
			r.cargos.On("Update", mock.Anything, c).Return(nil).Once(),
			r.uow.On("Commit", mock.Anything).Return(nil).Once(),
			r.uow.On("Rollback", mock.Anything).Return(nil).Once(),
		)

		factory := new(MockInspectionUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewInspectCargoCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, cargo.InPort, c.Delivery().TransportStatus())
		r.outbox.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		r.assertExpectations(t)
	})

	t.Run("raise_a_signal_for_every_inspection_of_a_misdirected_cargo", func(t *testing.T) {
		ctx := t.Context()
		c := routedCargo(t)
		wrongVoyage, err := commands.NewRegisterHandlingEventCommand(at(3, 1), at(3, 0), testTrackingID, v400, handling.Load, hongKong)
		require.NoError(t, err)
		cmd, err := commands.NewInspectCargoCommand(testTrackingID)
		require.NoError(t, err)

		r := newRepos()
		r.uow.On("Begin", mock.Anything).Return(nil).Twice()
		r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(c, nil).Twice()
		r.events.On("LookupHandlingHistoryOfCargo", mock.Anything, testTrackingID).
			Return(historyOf(t, wrongVoyage.Attempt()), nil).Twice()
		r.outbox.On("Add", mock.Anything, signalOfKind(signal.CargoMisdirected)).Return(nil).Twice()
		r.cargos.On("Update", mock.Anything, c).Return(nil).Twice()
		r.uow.On("Commit", mock.Anything).Return(nil).Twice()
		r.uow.On("Rollback", mock.Anything).Return(nil).Twice()

		factory := new(MockInspectionUoWFactory)
		factory.On("Create").Return(r.uow).Twice()
		h := commands.NewInspectCargoCommandHandler(factory, discardLogger())

		require.NoError(t, h.Handle(ctx, cmd))
		first := c.Delivery()
		require.NoError(t, h.Handle(ctx, cmd))

		assert.True(t, first.IsMisdirected())
		assert.True(t, first.IsEqual(c.Delivery()))
		r.assertExpectations(t)
	})

	t.Run("ignore_an_unknown_cargo", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewInspectCargoCommand(testTrackingID)
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", mock.Anything).Return(nil).Once(),
			r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).
				Return(nil, errs.NewObjectNotFoundError("trackingId", testTrackingID.String())).Once(),
			r.uow.On("Rollback", mock.Anything).Return(nil).Once(),
		)

		factory := new(MockInspectionUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewInspectCargoCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		r.uow.AssertNotCalled(t, "Commit", mock.Anything)
		r.assertExpectations(t)
	})

	t.Run("fail_validation_when_not_constructed", func(t *testing.T) {
		factory := new(MockInspectionUoWFactory)

		err := commands.NewInspectCargoCommandHandler(factory, discardLogger()).Handle(t.Context(), commands.InspectCargoCommand{})

		require.ErrorIs(t, err, commands.ErrInspectCargoCommandIsNotConstructed)
	})
}
