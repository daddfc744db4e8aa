package cargorepo

import (
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CargoDTO struct {
	TrackingID      string      `gorm:"type:varchar(32);primaryKey"`
	Origin          string      `gorm:"type:char(5);not null"`
	Destination     string      `gorm:"type:char(5);not null"`
	ArrivalDeadline time.Time   `gorm:"not null"`
	Delivery        DeliveryDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Legs            []LegDTO    `gorm:"foreignKey:TrackingID;references:TrackingID;constraint:OnDelete:CASCADE"`
}

func (CargoDTO) TableName() string {
	return "cargos"
}

// DeliveryDTO flattens the derived delivery, including a copy of the last event it was
// derived from, into the cargo row.
type DeliveryDTO struct {
	TransportStatus       string     `gorm:"type:varchar(32);not null"`
	RoutingStatus         string     `gorm:"type:varchar(32);not null"`
	LastKnownLocation     string     `gorm:"type:char(5);not null"`
	CurrentVoyage         string     `gorm:"type:varchar(32)"`
	Misdirected           bool       `gorm:"not null"`
	ETA                   *time.Time `gorm:"type:timestamptz"`
	UnloadedAtDestination bool       `gorm:"not null"`
	NextActivityType      string     `gorm:"type:varchar(16)"`
	NextActivityLocation  string     `gorm:"type:varchar(5)"`
	NextActivityVoyage    string     `gorm:"type:varchar(32)"`
	CalculatedAt          time.Time  `gorm:"not null"`

	LastEventID               *uuid.UUID `gorm:"type:uuid"`
	LastEventType             string     `gorm:"type:varchar(16)"`
	LastEventLocation         string     `gorm:"type:varchar(5)"`
	LastEventVoyage           string     `gorm:"type:varchar(32)"`
	LastEventCompletionTime   *time.Time
	LastEventRegistrationTime *time.Time
}

type LegDTO struct {
	ID             uint      `gorm:"primaryKey"`
	TrackingID     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_leg_position"`
	Position       int       `gorm:"not null;uniqueIndex:idx_leg_position"`
	VoyageNumber   string    `gorm:"type:varchar(32);not null"`
	LoadLocation   string    `gorm:"type:char(5);not null"`
	UnloadLocation string    `gorm:"type:char(5);not null"`
	LoadTime       time.Time `gorm:"not null"`
	UnloadTime     time.Time `gorm:"not null"`
}

func (LegDTO) TableName() string {
	return "cargo_legs"
}

func fromDomain(c *cargo.Cargo) CargoDTO {
	spec := c.RouteSpecification()
	legs := c.Itinerary().Legs()

	legDTOs := make([]LegDTO, 0, len(legs))
	for i, leg := range legs {
		legDTOs = append(legDTOs, LegDTO{
			TrackingID:     c.TrackingID().String(),
			Position:       i,
			VoyageNumber:   leg.Voyage().String(),
			LoadLocation:   leg.LoadLocation().String(),
			UnloadLocation: leg.UnloadLocation().String(),
			LoadTime:       leg.LoadTime(),
			UnloadTime:     leg.UnloadTime(),
		})
	}

	return CargoDTO{
		TrackingID:      c.TrackingID().String(),
		Origin:          spec.Origin().String(),
		Destination:     spec.Destination().String(),
		ArrivalDeadline: spec.ArrivalDeadline(),
		Delivery:        deliveryFromDomain(c.Delivery()),
		Legs:            legDTOs,
	}
}

func deliveryFromDomain(d cargo.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		TransportStatus:       d.TransportStatus().String(),
		RoutingStatus:         d.RoutingStatus().String(),
		LastKnownLocation:     d.LastKnownLocation().String(),
		CurrentVoyage:         d.CurrentVoyage().String(),
		Misdirected:           d.IsMisdirected(),
		UnloadedAtDestination: d.IsUnloadedAtDestination(),
		CalculatedAt:          d.CalculatedAt(),
	}

	if eta, ok := d.ETA(); ok {
		dto.ETA = &eta
	}

	if next := d.NextExpectedActivity(); !next.IsEmpty() {
		dto.NextActivityType = next.Type.String()
		dto.NextActivityLocation = next.Location.String()
		dto.NextActivityVoyage = next.Voyage.String()
	}

	if last, ok := d.LastEvent(); ok {
		id := last.ID().Bytes()
		completion := last.CompletionTime()
		registration := last.RegistrationTime()
		dto.LastEventID = &id
		dto.LastEventType = last.Type().String()
		dto.LastEventLocation = last.Location().String()
		dto.LastEventVoyage = last.Voyage().String()
		dto.LastEventCompletionTime = &completion
		dto.LastEventRegistrationTime = &registration
	}

	return dto
}

func toDomain(dto CargoDTO) (*cargo.Cargo, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewUnLocode(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewUnLocode(dto.Destination)
	if err != nil {
		return nil, err
	}
	spec, err := cargo.NewRouteSpecification(origin, destination, dto.ArrivalDeadline)
	if err != nil {
		return nil, err
	}

	itinerary, err := itineraryToDomain(dto.Legs)
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(trackingID, dto.Delivery)
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(trackingID, spec, itinerary, delivery)
}

func itineraryToDomain(dtos []LegDTO) (cargo.Itinerary, error) {
	if len(dtos) == 0 {
		return cargo.EmptyItinerary, nil
	}

	legs := make([]cargo.Leg, 0, len(dtos))
	for _, dto := range dtos {
		load, err := kernel.NewUnLocode(dto.LoadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		unload, err := kernel.NewUnLocode(dto.UnloadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		leg, err := cargo.NewLeg(kernel.VoyageNumberFromString(dto.VoyageNumber), load, unload, dto.LoadTime, dto.UnloadTime)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func deliveryToDomain(trackingID kernel.TrackingID, dto DeliveryDTO) (cargo.Delivery, error) {
	transportStatus, err := cargo.ParseTransportStatus(dto.TransportStatus)
	if err != nil {
		return cargo.Delivery{}, err
	}
	routingStatus, err := cargo.ParseRoutingStatus(dto.RoutingStatus)
	if err != nil {
		return cargo.Delivery{}, err
	}
	lastKnown, err := kernel.NewUnLocode(dto.LastKnownLocation)
	if err != nil {
		return cargo.Delivery{}, err
	}

	snapshot := cargo.DeliverySnapshot{
		TransportStatus:       transportStatus,
		LastKnownLocation:     lastKnown,
		CurrentVoyage:         kernel.VoyageNumberFromString(dto.CurrentVoyage),
		Misdirected:           dto.Misdirected,
		RoutingStatus:         routingStatus,
		UnloadedAtDestination: dto.UnloadedAtDestination,
		CalculatedAt:          dto.CalculatedAt,
	}

	if dto.ETA != nil {
		snapshot.ETA = *dto.ETA
	}

	if dto.NextActivityType != "" {
		next, nextErr := activityToDomain(dto)
		if nextErr != nil {
			return cargo.Delivery{}, nextErr
		}
		snapshot.NextExpectedActivity = next
	}

	if dto.LastEventID != nil {
		last, lastErr := lastEventToDomain(trackingID, dto)
		if lastErr != nil {
			return cargo.Delivery{}, lastErr
		}
		snapshot.LastEvent = &last
	}

	return cargo.RestoreDelivery(snapshot), nil
}

func activityToDomain(dto DeliveryDTO) (cargo.HandlingActivity, error) {
	eventType, err := handling.ParseEventType(dto.NextActivityType)
	if err != nil {
		return cargo.HandlingActivity{}, err
	}
	loc, err := kernel.NewUnLocode(dto.NextActivityLocation)
	if err != nil {
		return cargo.HandlingActivity{}, err
	}
	return cargo.HandlingActivity{
		Type:     eventType,
		Location: loc,
		Voyage:   kernel.VoyageNumberFromString(dto.NextActivityVoyage),
	}, nil
}

func lastEventToDomain(trackingID kernel.TrackingID, dto DeliveryDTO) (handling.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.LastEventID[:])
	if err != nil {
		return handling.Event{}, err
	}
	eventType, err := handling.ParseEventType(dto.LastEventType)
	if err != nil {
		return handling.Event{}, err
	}
	loc, err := kernel.NewUnLocode(dto.LastEventLocation)
	if err != nil {
		return handling.Event{}, err
	}

	var completion, registration time.Time
	if dto.LastEventCompletionTime != nil {
		completion = *dto.LastEventCompletionTime
	}
	if dto.LastEventRegistrationTime != nil {
		registration = *dto.LastEventRegistrationTime
	}

	return handling.RestoreEvent(
		id,
		trackingID,
		eventType,
		completion,
		registration,
		loc,
		kernel.VoyageNumberFromString(dto.LastEventVoyage),
	)
}
