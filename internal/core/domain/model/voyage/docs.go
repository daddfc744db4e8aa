// Package voyage models vessel voyages as reference data: a VoyageNumber plus a
// contiguous schedule of carrier movements. The tracking core only looks voyages up;
// it never changes them.
package voyage
