package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type BookNewCargoHandler interface {
	Handle(ctx context.Context, cmd commands.BookNewCargoCommand) (kernel.TrackingID, error)
}

type AssignCargoToRouteHandler interface {
	Handle(ctx context.Context, cmd commands.AssignCargoToRouteCommand) error
}

type ChangeDestinationHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeDestinationCommand) error
}

type ChangeDeadlineHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeDeadlineCommand) error
}

type InspectCargoHandler interface {
	Handle(ctx context.Context, cmd commands.InspectCargoCommand) error
}

type RequestPossibleRoutesHandler interface {
	Handle(ctx context.Context, query queries.RequestPossibleRoutesQuery) ([]cargo.Itinerary, error)
}

type ListShippingLocationsHandler interface {
	Handle(ctx context.Context, query queries.ListShippingLocationsQuery) ([]queries.ListShippingLocationsQueryResponse, error)
}

type ListCargosHandler interface {
	Handle(ctx context.Context, query queries.ListCargosQuery) ([]queries.ListCargosQueryResponse, error)
}

type GetCargoTrackingHandler interface {
	Handle(ctx context.Context, query queries.GetCargoTrackingQuery) (queries.GetCargoTrackingQueryResponse, error)
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	BookNewCargo          BookNewCargoHandler
	AssignCargoToRoute    AssignCargoToRouteHandler
	ChangeDestination     ChangeDestinationHandler
	ChangeDeadline        ChangeDeadlineHandler
	InspectCargo          InspectCargoHandler
	RequestPossibleRoutes RequestPossibleRoutesHandler
	ListShippingLocations ListShippingLocationsHandler
	ListCargos            ListCargosHandler
	GetCargoTracking      GetCargoTrackingHandler
	HandlingReports       ports.RegistrationAttemptPublisher
}

// Server serves the booking, handling and tracking API.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	now      func() time.Time
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http-server"),
		now:      time.Now,
	}
}

// SubmitHandlingReport handles POST /handling/reports. The report is queued for
// registration, so acceptance says nothing about whether the event will be stored.
func (s *Server) SubmitHandlingReport(ctx echo.Context) error {
	var report HandlingReport
	if err := ctx.Bind(&report); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	attempt, err := s.attemptFromReport(report)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.HandlingReports.Publish(ctx.Request().Context(), attempt); err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "failed to enqueue handling report",
			"trackingId", report.TrackingID, "error", err)
		return badRequest(ctx, "handling report could not be queued")
	}

	return ctx.NoContent(http.StatusAccepted)
}

func (s *Server) attemptFromReport(report HandlingReport) (handling.RegistrationAttempt, error) {
	trackingID, idErr := kernel.NewTrackingID(report.TrackingID)
	eventType, typeErr := handling.ParseEventType(report.EventType)
	unLocode, locErr := kernel.NewUnLocode(report.UnLocode)
	if err := errors.Join(idErr, typeErr, locErr); err != nil {
		return handling.RegistrationAttempt{}, err
	}

	voyage := kernel.NoVoyage
	if report.VoyageNumber != nil {
		voyage = kernel.VoyageNumberFromString(*report.VoyageNumber)
	}

	return handling.RegistrationAttempt{
		RegistrationTime: s.now().UTC(),
		CompletionTime:   report.CompletionTime,
		TrackingID:       trackingID,
		VoyageNumber:     voyage,
		EventType:        eventType,
		UnLocode:         unLocode,
	}, nil
}

// BookCargo handles POST /booking/cargos.
func (s *Server) BookCargo(ctx echo.Context) error {
	var req BookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	origin, originErr := kernel.NewUnLocode(req.Origin)
	destination, destErr := kernel.NewUnLocode(req.Destination)
	if err := errors.Join(originErr, destErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewBookNewCargoCommand(origin, destination, req.ArrivalDeadline.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	trackingID, err := s.handlers.BookNewCargo.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BookingResponse{TrackingID: trackingID.String()})
}

// GetPossibleRoutes handles GET /booking/cargos/{trackingId}/routes.
func (s *Server) GetPossibleRoutes(ctx echo.Context) error {
	trackingID, err := bindTrackingID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewRequestPossibleRoutesQuery(trackingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	itineraries, err := s.handlers.RequestPossibleRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Itinerary, len(itineraries))
	for i, itinerary := range itineraries {
		response[i] = toItineraryDTO(itinerary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignItinerary handles PUT /booking/cargos/{trackingId}/itinerary.
func (s *Server) AssignItinerary(ctx echo.Context) error {
	trackingID, err := s.trackingIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body Itinerary
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itinerary, err := fromItineraryDTO(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, itinerary)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.AssignCargoToRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDestination handles PUT /booking/cargos/{trackingId}/destination.
func (s *Server) ChangeDestination(ctx echo.Context) error {
	trackingID, err := s.trackingIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body DestinationChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	destination, err := kernel.NewUnLocode(body.Destination)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeDestinationCommand(trackingID, destination)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.ChangeDestination.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDeadline handles PUT /booking/cargos/{trackingId}/deadline.
func (s *Server) ChangeDeadline(ctx echo.Context) error {
	trackingID, err := s.trackingIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body DeadlineChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeDeadlineCommand(trackingID, body.ArrivalDeadline.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.ChangeDeadline.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListLocations handles GET /booking/locations.
func (s *Server) ListLocations(ctx echo.Context) error {
	locations, err := s.handlers.ListShippingLocations.Handle(ctx.Request().Context(), queries.NewListShippingLocationsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Location, len(locations))
	for i, l := range locations {
		response[i] = Location{UnLocode: l.UnLocode.String(), Name: l.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListCargos handles GET /cargo.
func (s *Server) ListCargos(ctx echo.Context) error {
	cargos, err := s.handlers.ListCargos.Handle(ctx.Request().Context(), queries.NewListCargosQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]CargoSummary, len(cargos))
	for i, c := range cargos {
		response[i] = CargoSummary{
			TrackingID:        c.TrackingID.String(),
			RoutingStatus:     c.RoutingStatus.String(),
			Misdirected:       c.Misdirected,
			TransportStatus:   c.TransportStatus.String(),
			AtDestination:     c.AtDestination,
			Origin:            c.Origin.String(),
			Destination:       c.Destination.String(),
			LastKnownLocation: c.LastKnownLocation,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// InspectCargo handles POST /cargo/{trackingId}/inspection.
func (s *Server) InspectCargo(ctx echo.Context) error {
	trackingID, err := s.trackingIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewInspectCargoCommand(trackingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.InspectCargo.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackCargo handles GET /tracking/{trackingId}.
func (s *Server) TrackCargo(ctx echo.Context) error {
	trackingID, err := bindTrackingID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCargoTrackingQuery(trackingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	tracking, err := s.handlers.GetCargoTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	events := make([]TrackedEvent, len(tracking.Events))
	for i, e := range tracking.Events {
		events[i] = TrackedEvent{Time: e.CompletionTime, Description: e.Description, Expected: e.Expected}
	}

	return ctx.JSON(http.StatusOK, Tracking{
		TrackingID:           tracking.TrackingID.String(),
		StatusCode:           tracking.StatusCode,
		StatusText:           tracking.StatusText,
		Origin:               toLocationDTO(tracking.Origin),
		Destination:          toLocationDTO(tracking.Destination),
		LastKnownLocation:    toLocationDTO(tracking.LastKnownLocation),
		Misdirected:          tracking.Misdirected,
		ETA:                  tracking.ETA,
		NextExpectedActivity: tracking.NextExpectedActivity,
		Events:               events,
	})
}

func bindTrackingID(ctx echo.Context) (string, error) {
	var trackingID string
	err := runtime.BindStyledParameterWithOptions("simple", "trackingId", ctx.Param("trackingId"), &trackingID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return trackingID, err
}

func (s *Server) trackingIDParam(ctx echo.Context) (kernel.TrackingID, error) {
	raw, err := bindTrackingID(ctx)
	if err != nil {
		return kernel.TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId", err)
	}
	return kernel.NewTrackingID(raw)
}

func toLocationDTO(l queries.TrackedLocation) Location {
	return Location{UnLocode: l.UnLocode.String(), Name: l.Name}
}

func toItineraryDTO(itinerary cargo.Itinerary) Itinerary {
	legs := itinerary.Legs()
	dto := Itinerary{Legs: make([]Leg, len(legs))}
	for i, leg := range legs {
		dto.Legs[i] = Leg{
			VoyageNumber: leg.Voyage().String(),
			From:         leg.LoadLocation().String(),
			To:           leg.UnloadLocation().String(),
			LoadTime:     leg.LoadTime(),
			UnloadTime:   leg.UnloadTime(),
		}
	}
	return dto
}

func fromItineraryDTO(dto Itinerary) (cargo.Itinerary, error) {
	legs := make([]cargo.Leg, 0, len(dto.Legs))
	for _, l := range dto.Legs {
		voyage, voyageErr := kernel.NewVoyageNumber(l.VoyageNumber)
		from, fromErr := kernel.NewUnLocode(l.From)
		to, toErr := kernel.NewUnLocode(l.To)
		if err := errors.Join(voyageErr, fromErr, toErr); err != nil {
			return cargo.Itinerary{}, err
		}

		leg, err := cargo.NewLeg(voyage, from, to, l.LoadTime, l.UnloadTime)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		legs = append(legs, leg)
	}
	return cargo.NewItinerary(legs)
}

// statusOf maps a use case error to the response status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, cargo.ErrItineraryNotContiguous),
		errors.Is(err, handling.ErrCannotCreateHandlingEvent):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(status, Error{Code: status, Message: "internal server error"})
	}
	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
