package planter

import (
	"errors"
	"fmt"
	"math"
	"time"

	"liyu1981.xyz/plant-care-service/pkg/models"
)

// PumpRateMlPerMinute is the flow of the reservoir pump.
const PumpRateMlPerMinute = 100.0

const day = 24 * time.Hour

type WateringStatus struct {
	WateringFrequency   int     `json:"watering_frequency"`
	TimeLeftBeforeWater float64 `json:"time_left_before_water"`
	PumpDurationSeconds int     `json:"pump_duration_seconds"`
	WaterAmountMl       float64 `json:"water_amount_ml"`
	NeedsWatering       bool    `json:"needs_watering"`
}

type WateringReport struct {
	PlantID       uint       `json:"plant_id"`
	PlantName     string     `json:"plant_name"`
	LastWateredAt *time.Time `json:"last_watered_at"`
	WateringStatus
	Timestamp time.Time `json:"timestamp"`
}

type WateringConfirmation struct {
	Success            bool      `json:"success"`
	PlantID            uint      `json:"plant_id"`
	PlantName          string    `json:"plant_name"`
	WateredAt          time.Time `json:"watered_at"`
	NextWateringInDays int       `json:"next_watering_in_days"`
}

// PumpDurationSeconds is how long the pump runs to deliver waterAmount mL,
// rounded to the nearest second with halves rounded up.
func PumpDurationSeconds(waterAmount float64) int {
	return int(math.Round(waterAmount / PumpRateMlPerMinute * 60))
}

// CalculateWatering derives the schedule of a plant at now. A plant that was
// never watered needs water immediately.
func CalculateWatering(plant *models.Plant, now time.Time) WateringStatus {
	status := WateringStatus{
		WateringFrequency:   plant.WateringFrequency,
		PumpDurationSeconds: PumpDurationSeconds(plant.WaterAmount),
		WaterAmountMl:       plant.WaterAmount,
	}

	if plant.LastWateredAt == nil {
		status.NeedsWatering = true
		return status
	}

	daysSince := float64(now.Sub(*plant.LastWateredAt)) / float64(day)
	timeLeft := math.Max(0, float64(plant.WateringFrequency)-daysSince)
	status.TimeLeftBeforeWater = roundTo(timeLeft, 1)
	status.NeedsWatering = status.TimeLeftBeforeWater <= 0

	return status
}

// statusForPlant returns nil without an error for an unknown plant, callers
// that embed watering info simply leave it out.
func (i *Planter) statusForPlant(id uint) (*WateringReport, error) {
	if i.Plant == nil {
		return nil, fmt.Errorf("plant service not available")
	}

	plant, err := i.Plant.GetByID(id)
	if errors.Is(err, ErrPlantNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	now := i.now()
	return &WateringReport{
		PlantID:        plant.ID,
		PlantName:      plant.Name,
		LastWateredAt:  plant.LastWateredAt,
		WateringStatus: CalculateWatering(plant, now),
		Timestamp:      now,
	}, nil
}

func (i *Planter) water(id uint) (*WateringConfirmation, error) {
	if i.Plant == nil {
		return nil, fmt.Errorf("plant service not available")
	}

	plant, err := i.Plant.MarkWatered(id)
	if err != nil {
		return nil, err
	}

	return &WateringConfirmation{
		Success:            true,
		PlantID:            plant.ID,
		PlantName:          plant.Name,
		WateredAt:          *plant.LastWateredAt,
		NextWateringInDays: plant.WateringFrequency,
	}, nil
}

type IWateringImpl struct {
	core *Planter
}

func (iw *IWateringImpl) StatusForPlant(id uint) (*WateringReport, error) {
	return iw.core.statusForPlant(id)
}

func (iw *IWateringImpl) Water(id uint) (*WateringConfirmation, error) {
	return iw.core.water(id)
}

func (i *Planter) GetIWatering() IWatering {
	return &IWateringImpl{core: i}
}
