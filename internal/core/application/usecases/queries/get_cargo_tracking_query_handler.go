package queries

import (
	"context"
	"fmt"
	"strings"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
)

// GetCargoTrackingQueryHandler assembles the tracking view from the cargo, its
// handling history and the location names.
type GetCargoTrackingQueryHandler struct {
	cargos    ports.CargoRepository
	events    ports.HandlingEventRepository
	locations ports.LocationRepository
}

func NewGetCargoTrackingQueryHandler(
	cargos ports.CargoRepository,
	events ports.HandlingEventRepository,
	locations ports.LocationRepository,
) GetCargoTrackingQueryHandler {
	return GetCargoTrackingQueryHandler{
		cargos:    cargos,
		events:    events,
		locations: locations,
	}
}

// Handle returns an error matching errs.ErrObjectNotFound for an unknown tracking id.
func (h GetCargoTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetCargoTrackingQuery,
) (GetCargoTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCargoTrackingQueryResponse{}, err
	}

	c, err := h.cargos.Get(ctx, query.TrackingID())
	if err != nil {
		return GetCargoTrackingQueryResponse{}, err
	}

	history, err := h.events.LookupHandlingHistoryOfCargo(ctx, query.TrackingID())
	if err != nil {
		return GetCargoTrackingQueryResponse{}, err
	}

	names, err := h.locationNames(ctx)
	if err != nil {
		return GetCargoTrackingQueryResponse{}, err
	}

	delivery := c.Delivery()
	spec := c.RouteSpecification()

	response := GetCargoTrackingQueryResponse{
		TrackingID:           c.TrackingID(),
		Origin:               names.tracked(spec.Origin()),
		Destination:          names.tracked(spec.Destination()),
		LastKnownLocation:    names.tracked(delivery.LastKnownLocation()),
		StatusCode:           statusCode(c),
		StatusText:           statusText(delivery, names.name(spec.Destination())),
		Misdirected:          delivery.IsMisdirected(),
		NextExpectedActivity: nextActivityText(delivery.NextExpectedActivity(), names),
	}
	if eta, ok := delivery.ETA(); ok {
		response.ETA = &eta
	}

	distinct := history.DistinctEventsByCompletionTime()
	response.Events = make([]TrackedEvent, 0, len(distinct))
	for _, event := range distinct {
		response.Events = append(response.Events, TrackedEvent{
			CompletionTime: event.CompletionTime(),
			Description:    eventDescription(event, names),
			Expected:       c.Itinerary().IsExpected(event),
		})
	}

	return response, nil
}

func (h GetCargoTrackingQueryHandler) locationNames(ctx context.Context) (locationNames, error) {
	all, err := h.locations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(locationNames, len(all))
	for _, loc := range all {
		names[loc.UnLocode().String()] = loc.Name()
	}
	return names, nil
}

// locationNames resolves UN/LOCODEs to display names, falling back to the code.
type locationNames map[string]string

func (n locationNames) name(code kernel.UnLocode) string {
	if code.IsUnknown() {
		return unknownLocationText
	}
	if name, ok := n[code.String()]; ok {
		return name
	}
	return code.String()
}

func (n locationNames) tracked(code kernel.UnLocode) TrackedLocation {
	return TrackedLocation{UnLocode: code, Name: n.name(code)}
}

func statusCode(c *cargo.Cargo) string {
	delivery := c.Delivery()
	switch {
	case c.Itinerary().IsEmpty():
		return StatusCodeNotRouted
	case delivery.IsUnloadedAtDestination():
		return StatusCodeAtDestination
	case delivery.IsMisdirected():
		return StatusCodeMisdirected
	default:
		return delivery.TransportStatus().String()
	}
}

func statusText(delivery cargo.Delivery, destinationName string) string {
	switch delivery.TransportStatus() {
	case cargo.InPort:
		return "In port " + destinationName
	case cargo.OnboardCarrier:
		return "Onboard voyage " + delivery.CurrentVoyage().String()
	case cargo.Claimed:
		return "Claimed"
	case cargo.NotReceived:
		return "Not received"
	default:
		return "Unknown"
	}
}

func nextActivityText(activity cargo.HandlingActivity, names locationNames) string {
	if activity.IsEmpty() {
		return ""
	}

	verb := strings.ToLower(activity.Type.String())
	where := names.name(activity.Location)

	switch activity.Type {
	case handling.Load:
		return fmt.Sprintf("Next expected activity is to %s cargo onto voyage %s in %s", verb, activity.Voyage, where)
	case handling.Unload:
		return fmt.Sprintf("Next expected activity is to %s cargo off of %s in %s", verb, activity.Voyage, where)
	default:
		return fmt.Sprintf("Next expected activity is to %s cargo in %s", verb, where)
	}
}

func eventDescription(event handling.Event, names locationNames) string {
	where := names.name(event.Location())

	switch event.Type() {
	case handling.Load:
		return fmt.Sprintf("Loaded onto voyage %s in %s", event.Voyage(), where)
	case handling.Unload:
		return fmt.Sprintf("Unloaded off voyage %s in %s", event.Voyage(), where)
	case handling.Receive:
		return "Received in " + where
	case handling.Claim:
		return "Claimed in " + where
	case handling.Customs:
		return "Cleared customs in " + where
	default:
		panic(fmt.Sprintf("unhandled handling event type %s", event.Type()))
	}
}
