// Package signal defines the outbound notifications raised while tracking cargo:
// a cargo was handled, was misdirected, or has arrived at its destination.
package signal
