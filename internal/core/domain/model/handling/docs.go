// Package handling records what physically happened to a cargo.
//
// An Event is one occurrence: RECEIVE, LOAD, UNLOAD, CUSTOMS or CLAIM at a location,
// with a voyage for LOAD and UNLOAD only. A History is the bag of events for a cargo;
// derivation only ever looks at its distinct, completion-ordered view.
//
// Failures to register an event are typed (UnknownCargoError, UnknownVoyageError,
// UnknownLocationError or a voyage presence mismatch) and all of them match
// ErrCannotCreateHandlingEvent under errors.Is.
package handling
