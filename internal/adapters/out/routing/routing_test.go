package routing_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"cargotracker/internal/adapters/out/routing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(d int) time.Time {
	return time.Date(2009, time.March, d, 0, 0, 0, 0, time.UTC)
}

func edge(voyage, from, to string, fromDay, toDay int) routing.TransitEdge {
	return routing.TransitEdge{
		VoyageNumber: voyage,
		FromUnLocode: from,
		ToUnLocode:   to,
		FromDate:     day(fromDay),
		ToDate:       day(toDay),
	}
}

func path(edges ...routing.TransitEdge) routing.TransitPath {
	return routing.TransitPath{TransitEdges: edges}
}

// stubPathFinder answers every call with the same paths and counts the calls.
type stubPathFinder struct {
	paths []routing.TransitPath
	err   error
	calls atomic.Int32
}

func (s *stubPathFinder) FindShortestPath(context.Context, string, string, time.Time) ([]routing.TransitPath, error) {
	s.calls.Add(1)
	return s.paths, s.err
}
