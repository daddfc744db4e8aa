package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies of the API described in openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

type HandlingReport struct {
	CompletionTime time.Time `json:"completionTime"`
	TrackingID     string    `json:"trackingId"`
	EventType      string    `json:"eventType"`
	UnLocode       string    `json:"unLocode"`
	VoyageNumber   *string   `json:"voyageNumber,omitempty"`
}

type BookingRequest struct {
	Origin          string             `json:"origin"`
	Destination     string             `json:"destination"`
	ArrivalDeadline openapi_types.Date `json:"arrivalDeadline"`
}

type BookingResponse struct {
	TrackingID string `json:"trackingId"`
}

type DestinationChange struct {
	Destination string `json:"destination"`
}

type DeadlineChange struct {
	ArrivalDeadline openapi_types.Date `json:"arrivalDeadline"`
}

type Leg struct {
	VoyageNumber string    `json:"voyageNumber"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	LoadTime     time.Time `json:"loadTime"`
	UnloadTime   time.Time `json:"unloadTime"`
}

type Itinerary struct {
	Legs []Leg `json:"legs"`
}

type Location struct {
	UnLocode string `json:"unLocode"`
	Name     string `json:"name"`
}

type CargoSummary struct {
	TrackingID        string `json:"trackingId"`
	RoutingStatus     string `json:"routingStatus"`
	Misdirected       bool   `json:"misdirected"`
	TransportStatus   string `json:"transportStatus"`
	AtDestination     bool   `json:"atDestination"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	LastKnownLocation string `json:"lastKnownLocation"`
}

type TrackedEvent struct {
	Time        time.Time `json:"time"`
	Description string    `json:"description"`
	Expected    bool      `json:"expected"`
}

type Tracking struct {
	TrackingID           string         `json:"trackingId"`
	StatusCode           string         `json:"statusCode"`
	StatusText           string         `json:"statusText"`
	Origin               Location       `json:"origin"`
	Destination          Location       `json:"destination"`
	LastKnownLocation    Location       `json:"lastKnownLocation"`
	Misdirected          bool           `json:"misdirected"`
	ETA                  *time.Time     `json:"eta"`
	NextExpectedActivity string         `json:"nextExpectedActivity"`
	Events               []TrackedEvent `json:"events"`
}
