package commands_test

import (
	"errors"
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registration(t *testing.T, eventType handling.EventType, completionDay int, loc kernel.UnLocode, v kernel.VoyageNumber) commands.RegisterHandlingEventCommand {
	t.Helper()
	cmd, err := commands.NewRegisterHandlingEventCommand(at(completionDay, 1), at(completionDay, 0), testTrackingID, v, eventType, loc)
	require.NoError(t, err)
	return cmd
}

func TestNewRegisterHandlingEventCommand(t *testing.T) {
	t.Run("default_the_registration_time_to_now", func(t *testing.T) {
		cmd, err := commands.NewRegisterHandlingEventCommand(
			time.Time{}, at(3, 0), testTrackingID, kernel.NoVoyage, handling.Receive, hongKong)

		require.NoError(t, err)
		assert.False(t, cmd.Attempt().RegistrationTime.IsZero())
	})

	t.Run("collect_every_invalid_field", func(t *testing.T) {
		_, err := commands.NewRegisterHandlingEventCommand(
			time.Time{}, time.Time{}, kernel.TrackingID{}, kernel.NoVoyage, handling.EventType(42), kernel.UnLocode{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("keep_the_attempt_unchanged", func(t *testing.T) {
		attempt := handling.RegistrationAttempt{
			RegistrationTime: at(5, 1),
			CompletionTime:   at(5, 0),
			TrackingID:       testTrackingID,
			VoyageNumber:     v100,
			EventType:        handling.Unload,
			UnLocode:         tokyo,
		}

		cmd, err := commands.NewRegisterHandlingEventCommandFromAttempt(attempt)

		require.NoError(t, err)
		assert.Equal(t, attempt, cmd.Attempt())
	})
}

func TestRegisterHandlingEventCommandHandler_Handle_Load(t *testing.T) {
	// Given a routed cargo received in Hong Kong
	ctx := t.Context()
	c := routedCargo(t)
	received := registration(t, handling.Receive, 2, hongKong, kernel.NoVoyage)
	cmd := registration(t, handling.Load, 3, hongKong, v100)

	r := newRepos()
	var added handling.Event
	mock.InOrder(
		r.uow.On("Begin", mock.Anything).Return(nil).Once(),
		r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(c, nil).Once(),
		r.voyages.On("Get", mock.Anything, v100).Return(voyage.V100, nil).Once(),
		r.locations.On("Get", mock.Anything, hongKong).Return(location.HongKong, nil).Once(),
		r.events.On("Add", mock.Anything, mock.AnythingOfType("handling.Event")).
			Run(func(args mock.Arguments) { added = args.Get(1).(handling.Event) }).
			Return(nil).Once(),
		r.outbox.On("Add", mock.Anything, signalOfKind(signal.CargoHandled)).Return(nil).Once(),
		r.events.On("LookupHandlingHistoryOfCargo", mock.Anything, testTrackingID).
			Return(historyOf(t, received.Attempt(), cmd.Attempt()), nil).Once(),
		r.cargos.On("Update", mock.Anything, c).Return(nil).Once(),
		r.uow.On("Commit", mock.Anything).Return(nil).Once(),
		r.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockHandlingUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	// When loading it onto the first voyage
	err := commands.NewRegisterHandlingEventCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	// Then the event is stored and the cargo is onboard, on track
	require.NoError(t, err)
	assert.Equal(t, handling.Load, added.Type())
	assert.True(t, added.Voyage().IsEqual(v100))
	d := c.Delivery()
	assert.Equal(t, cargo.OnboardCarrier, d.TransportStatus())
	assert.True(t, d.CurrentVoyage().IsEqual(v100))
	assert.False(t, d.IsMisdirected())
	assert.Equal(t, cargo.HandlingActivity{Type: handling.Unload, Location: tokyo, Voyage: v100}, d.NextExpectedActivity())
	r.assertExpectations(t)
}

func TestRegisterHandlingEventCommandHandler_Handle_Misdirected(t *testing.T) {
	// Given a cargo loaded onto the first voyage in Hong Kong
	ctx := t.Context()
	c := routedCargo(t)
	loaded := registration(t, handling.Load, 3, hongKong, v100)
	cmd := registration(t, handling.Unload, 9, kernel.MustUnLocode("USNYC"), v100)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", mock.Anything).Return(nil).Once(),
		r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(c, nil).Once(),
		r.voyages.On("Get", mock.Anything, v100).Return(voyage.V100, nil).Once(),
		r.locations.On("Get", mock.Anything, cmd.Attempt().UnLocode).Return(location.NewYork, nil).Once(),
		r.events.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		r.outbox.On("Add", mock.Anything, signalOfKind(signal.CargoHandled)).Return(nil).Once(),
		r.events.On("LookupHandlingHistoryOfCargo", mock.Anything, testTrackingID).
			Return(historyOf(t, loaded.Attempt(), cmd.Attempt()), nil).Once(),
		r.outbox.On("Add", mock.Anything, signalOfKind(signal.CargoMisdirected)).Return(nil).Once(),
		r.cargos.On("Update", mock.Anything, c).Return(nil).Once(),
		r.uow.On("Commit", mock.Anything).Return(nil).Once(),
		r.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockHandlingUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	// When it is unloaded in New York, which is not on its itinerary
	err := commands.NewRegisterHandlingEventCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	// Then the cargo is misdirected and a signal is queued
	require.NoError(t, err)
	assert.True(t, c.Delivery().IsMisdirected())
	assert.True(t, c.Delivery().NextExpectedActivity().IsEmpty())
	r.assertExpectations(t)
}

func TestRegisterHandlingEventCommandHandler_Handle_Arrived(t *testing.T) {
	ctx := t.Context()
	c := routedCargo(t)
	loaded := registration(t, handling.Load, 14, hamburg, v400)
	cmd := registration(t, handling.Unload, 15, stockholm, v400)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", mock.Anything).Return(nil).Once(),
		r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(c, nil).Once(),
		r.voyages.On("Get", mock.Anything, v400).Return(voyage.V400, nil).Once(),
		r.locations.On("Get", mock.Anything, stockholm).Return(location.Stockholm, nil).Once(),
		r.events.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		r.outbox.On("Add", mock.Anything, signalOfKind(signal.CargoHandled)).Return(nil).Once(),
		r.events.On("LookupHandlingHistoryOfCargo", mock.Anything, testTrackingID).
			Return(historyOf(t, loaded.Attempt(), cmd.Attempt()), nil).Once(),
		r.outbox.On("Add", mock.Anything, signalOfKind(signal.CargoArrived)).Return(nil).Once(),
		r.cargos.On("Update", mock.Anything, c).Return(nil).Once(),
		r.uow.On("Commit", mock.Anything).Return(nil).Once(),
		r.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockHandlingUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewRegisterHandlingEventCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, c.Delivery().IsUnloadedAtDestination())
	assert.Equal(t, cargo.HandlingActivity{Type: handling.Claim, Location: stockholm}, c.Delivery().NextExpectedActivity())
	r.assertExpectations(t)
}

func TestRegisterHandlingEventCommandHandler_Handle_UnknownReferences(t *testing.T) {
	tests := []struct {
		name    string
		cmd     func(t *testing.T) commands.RegisterHandlingEventCommand
		arrange func(t *testing.T, r repos)
		wantErr error
	}{
		{
			name: "reject_an_unknown_cargo",
			cmd: func(t *testing.T) commands.RegisterHandlingEventCommand {
				return registration(t, handling.Receive, 2, hongKong, kernel.NoVoyage)
			},
			arrange: func(t *testing.T, r repos) {
				r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).
					Return(nil, errs.NewObjectNotFoundError("trackingId", testTrackingID.String())).Once()
			},
			wantErr: handling.ErrUnknownCargo,
		},
		{
			name: "reject_an_unknown_voyage",
			cmd: func(t *testing.T) commands.RegisterHandlingEventCommand {
				return registration(t, handling.Load, 3, hongKong, kernel.VoyageNumberFromString("XX999"))
			},
			arrange: func(t *testing.T, r repos) {
				r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(bookedCargo(t), nil).Once()
				r.voyages.On("Get", mock.Anything, kernel.VoyageNumberFromString("XX999")).
					Return(nil, errs.NewObjectNotFoundError("voyageNumber", "XX999")).Once()
			},
			wantErr: handling.ErrUnknownVoyage,
		},
		{
			name: "reject_an_unknown_location",
			cmd: func(t *testing.T) commands.RegisterHandlingEventCommand {
				return registration(t, handling.Receive, 2, melbourne, kernel.NoVoyage)
			},
			arrange: func(t *testing.T, r repos) {
				r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(bookedCargo(t), nil).Once()
				r.locations.On("Get", mock.Anything, melbourne).
					Return(location.Location{}, errs.NewObjectNotFoundError("unLocode", melbourne.String())).Once()
			},
			wantErr: handling.ErrUnknownLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			r := newRepos()
			r.uow.On("Begin", mock.Anything).Return(nil).Once()
			tt.arrange(t, r)
			r.uow.On("Rollback", mock.Anything).Return(nil).Once()

			factory := new(MockHandlingUoWFactory)
			factory.On("Create").Return(r.uow).Once()

			err := commands.NewRegisterHandlingEventCommandHandler(factory, discardLogger()).Handle(ctx, tt.cmd(t))

			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)
			r.events.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			r.outbox.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			r.uow.AssertNotCalled(t, "Commit", mock.Anything)
			r.assertExpectations(t)
		})
	}
}

func TestRegisterHandlingEventCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	cmd := registration(t, handling.Receive, 2, hongKong, kernel.NoVoyage)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", mock.Anything).Return(nil).Once(),
		r.cargos.On("GetForUpdate", mock.Anything, testTrackingID).Return(routedCargo(t), nil).Once(),
		r.locations.On("Get", mock.Anything, hongKong).Return(location.HongKong, nil).Once(),
		r.events.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once(),
		r.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockHandlingUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	err := commands.NewRegisterHandlingEventCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.assertExpectations(t)
}
