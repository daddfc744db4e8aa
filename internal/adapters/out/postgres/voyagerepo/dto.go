package voyagerepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

type VoyageDTO struct {
	VoyageNumber string               `gorm:"type:varchar(32);primaryKey"`
	Movements    []CarrierMovementDTO `gorm:"foreignKey:VoyageNumber;references:VoyageNumber;constraint:OnDelete:CASCADE"`
}

func (VoyageDTO) TableName() string {
	return "voyages"
}

type CarrierMovementDTO struct {
	ID                uint      `gorm:"primaryKey"`
	VoyageNumber      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_movement_position"`
	Position          int       `gorm:"not null;uniqueIndex:idx_movement_position"`
	DepartureLocation string    `gorm:"type:char(5);not null"`
	ArrivalLocation   string    `gorm:"type:char(5);not null"`
	DepartureTime     time.Time `gorm:"not null"`
	ArrivalTime       time.Time `gorm:"not null"`
}

func (CarrierMovementDTO) TableName() string {
	return "carrier_movements"
}

func fromDomain(v *voyage.Voyage) VoyageDTO {
	schedule := v.Schedule()
	movements := make([]CarrierMovementDTO, 0, len(schedule))
	for i, m := range schedule {
		movements = append(movements, CarrierMovementDTO{
			VoyageNumber:      v.Number().String(),
			Position:          i,
			DepartureLocation: m.DepartureLocation().String(),
			ArrivalLocation:   m.ArrivalLocation().String(),
			DepartureTime:     m.DepartureTime(),
			ArrivalTime:       m.ArrivalTime(),
		})
	}

	return VoyageDTO{
		VoyageNumber: v.Number().String(),
		Movements:    movements,
	}
}

func toDomain(dto VoyageDTO) (*voyage.Voyage, error) {
	number, err := kernel.NewVoyageNumber(dto.VoyageNumber)
	if err != nil {
		return nil, err
	}

	movements := make([]voyage.CarrierMovement, 0, len(dto.Movements))
	for _, m := range dto.Movements {
		departure, depErr := kernel.NewUnLocode(m.DepartureLocation)
		if depErr != nil {
			return nil, depErr
		}
		arrival, arrErr := kernel.NewUnLocode(m.ArrivalLocation)
		if arrErr != nil {
			return nil, arrErr
		}
		movement, mErr := voyage.NewCarrierMovement(departure, arrival, m.DepartureTime, m.ArrivalTime)
		if mErr != nil {
			return nil, mErr
		}
		movements = append(movements, movement)
	}

	return voyage.NewVoyage(number, movements)
}
