package db

import (
	"time"

	"go.uber.org/zap"
	constant "liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/models"
)

func seedPlant(name string, waterAmount float64, frequency int, lightMin, lightMax float64, soilType string,
	humidityMin, humidityMax, temperatureMin, temperatureMax float64) models.Plant {
	return models.Plant{
		Name:              name,
		WaterAmount:       waterAmount,
		WateringFrequency: frequency,
		LightMin:          lightMin,
		LightMax:          lightMax,
		SoilType:          soilType,
		SoilMoistureMin:   30,
		SoilMoistureMax:   70,
		HumidityMin:       humidityMin,
		HumidityMax:       humidityMax,
		TemperatureMin:    temperatureMin,
		TemperatureMax:    temperatureMax,
	}
}

// DefaultPlants are the care profiles a fresh database starts with.
var DefaultPlants = []models.Plant{
	seedPlant("Snake Plant", 250, 14, 50, 200, "Well-draining potting mix", 30, 60, 15, 30),
	seedPlant("Peace Lily", 300, 7, 100, 300, "Rich, well-draining soil", 50, 80, 18, 28),
	seedPlant("Spider Plant", 200, 7, 100, 400, "Well-draining potting soil", 40, 70, 15, 30),
	seedPlant("Pothos", 250, 7, 50, 300, "Well-draining potting mix", 40, 70, 18, 30),
	seedPlant("Monstera", 400, 7, 200, 500, "Rich, well-draining soil", 60, 80, 20, 30),
	seedPlant("ZZ Plant", 200, 21, 50, 200, "Well-draining potting mix", 30, 60, 15, 30),
	seedPlant("Fiddle Leaf Fig", 350, 7, 200, 500, "Well-draining potting soil", 50, 70, 18, 28),
	seedPlant("Aloe Vera", 150, 21, 200, 600, "Cactus/succulent mix", 30, 50, 15, 30),
	seedPlant("Chinese Evergreen", 250, 10, 50, 200, "Well-draining potting mix", 40, 70, 18, 28),
	seedPlant("Philodendron", 300, 7, 100, 400, "Rich, well-draining soil", 50, 80, 18, 30),
}

// SeedPlants inserts DefaultPlants when the plants table is empty and reports
// how many rows were written.
func (d *DB) SeedPlants(now time.Time) (int, error) {
	var count int64
	if err := d.Conn.Model(&models.Plant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	plants := make([]models.Plant, len(DefaultPlants))
	for i, p := range DefaultPlants {
		p.CreatedAt = now
		p.UpdatedAt = now
		plants[i] = p
	}

	if err := d.Conn.Create(&plants).Error; err != nil {
		return 0, err
	}

	constant.GetLogger().Info("Seeded default plant profiles", zap.Int("count", len(plants)))
	return len(plants), nil
}
