// Package cargo implements the Cargo aggregate and the derivation of its Delivery.
//
// A cargo's logistics state is a pure function of three inputs: its RouteSpecification,
// its Itinerary and its handling history. Cargo.DeriveDeliveryProgress takes the most
// recent event of the history and decides, in this order:
//
//   - transport status from the event type (LOAD is on board, CLAIM is claimed, the rest is in port)
//   - last known location and, when on board, the current voyage
//   - whether the event is misdirected with respect to the itinerary
//   - the ETA, which is only known for a routed cargo that is not misdirected
//   - whether the cargo has been unloaded at its final destination
//   - the routing status, which depends on the itinerary and specification alone
//   - the next expected handling activity
//
// With no events the cargo is NOT_RECEIVED at an unknown location with nothing expected.
//
// A cargo that was rerouted after being misdirected is not misdirected while it waits in
// port at the first load location of its new itinerary; its next expected activity is the
// LOAD of the first leg.
package cargo
