package locationrepo

import (
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

type LocationDTO struct {
	UnLocode string `gorm:"type:char(5);primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(loc location.Location) LocationDTO {
	return LocationDTO{
		UnLocode: loc.UnLocode().String(),
		Name:     loc.Name(),
	}
}

func toDomain(dto LocationDTO) (location.Location, error) {
	code, err := kernel.NewUnLocode(dto.UnLocode)
	if err != nil {
		return location.Location{}, err
	}
	return location.NewLocation(code, dto.Name)
}
