// Package location models the places where cargo is handled, identified by their
// UN/LOCODE, together with the sample locations a new installation is seeded with.
package location
