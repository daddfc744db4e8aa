package location

import "cargotracker/internal/core/domain/model/kernel"

// Sample locations used to seed a fresh installation and to drive scenario tests.
var (
	HongKong   = mustLocation("CNHKG", "Hong Kong")
	Melbourne  = mustLocation("AUMEL", "Melbourne")
	Stockholm  = mustLocation("SESTO", "Stockholm")
	Helsinki   = mustLocation("FIHEL", "Helsinki")
	Chicago    = mustLocation("USCHI", "Chicago")
	Tokyo      = mustLocation("JNTKO", "Tokyo")
	Hamburg    = mustLocation("DEHAM", "Hamburg")
	Shanghai   = mustLocation("CNSHA", "Shanghai")
	Rotterdam  = mustLocation("NLRTM", "Rotterdam")
	Gothenburg = mustLocation("SEGOT", "Göteborg")
	Hangzhou   = mustLocation("CNHGH", "Hangzhou")
	NewYork    = mustLocation("USNYC", "New York")
	Dallas     = mustLocation("USDAL", "Dallas")
)

// Samples returns every sample location in a stable order.
func Samples() []Location {
	return []Location{
		HongKong, Melbourne, Stockholm, Helsinki, Chicago, Tokyo, Hamburg,
		Shanghai, Rotterdam, Gothenburg, Hangzhou, NewYork, Dallas,
	}
}

func mustLocation(code, name string) Location {
	loc, err := NewLocation(kernel.MustUnLocode(code), name)
	if err != nil {
		panic(err)
	}
	return loc
}
