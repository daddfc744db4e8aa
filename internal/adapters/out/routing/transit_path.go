// Package routing adapts the external path finder to the tracker's RoutingService port.
// The path finder knows nothing about cargo: it answers with transit paths between
// two UN/LOCODEs which are translated back into itineraries here.
package routing

import (
	"context"
	"time"
)

// TransitEdge is one voyage hop of a transit path as the path finder reports it.
type TransitEdge struct {
	VoyageNumber string    `json:"voyageNumber"`
	FromUnLocode string    `json:"fromUnLocode"`
	ToUnLocode   string    `json:"toUnLocode"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
}

type TransitPath struct {
	TransitEdges []TransitEdge `json:"transitEdges"`
}

// PathFinder returns candidate transit paths from origin to destination.
// Candidates are not guaranteed to meet the deadline.
type PathFinder interface {
	FindShortestPath(ctx context.Context, origin, destination string, deadline time.Time) ([]TransitPath, error)
}
