// Package services holds domain logic that spans aggregates:
//
//   - HandlingEventFactory validates a registration attempt against the known cargo,
//     voyages and locations before creating a handling event
//   - FilterItineraries keeps only the route candidates a route specification accepts
package services
