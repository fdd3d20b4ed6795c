package models

import "time"

type ReadingSource string

const (
	ReadingSourceFile     ReadingSource = "file"
	ReadingSourceDirect   ReadingSource = "direct"
	ReadingSourceFallback ReadingSource = "fallback"
	ReadingSourceMock     ReadingSource = "mock"
)

// Plant is a named care profile.
type Plant struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"not null;index" json:"name"`
	WaterAmount       float64    `gorm:"not null" json:"water_amount"`
	WateringFrequency int        `gorm:"not null" json:"watering_frequency"`
	LightMin          float64    `gorm:"not null" json:"light_min"`
	LightMax          float64    `gorm:"not null" json:"light_max"`
	SoilType          string     `gorm:"not null" json:"soil_type"`
	SoilMoistureMin   float64    `gorm:"not null" json:"soil_moisture_min"`
	SoilMoistureMax   float64    `gorm:"not null" json:"soil_moisture_max"`
	HumidityMin       float64    `gorm:"not null" json:"humidity_min"`
	HumidityMax       float64    `gorm:"not null" json:"humidity_max"`
	TemperatureMin    float64    `gorm:"not null" json:"temperature_min"`
	TemperatureMax    float64    `gorm:"not null" json:"temperature_max"`
	LastWateredAt     *time.Time `json:"last_watered_at"`
	CreatedAt         time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// SensorReading is one normalized, append-only sensor snapshot.
type SensorReading struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	WaterLevel    float64       `json:"water_level"`
	LightLevel    float64       `json:"light_level"`
	Moisture      float64       `json:"moisture"`
	Humidity      float64       `json:"humidity"`
	Temperature   float64       `json:"temperature"`
	WaterSensor75 bool          `gorm:"column:water_sensor_75" json:"water_sensor_75"`
	WaterSensor50 bool          `gorm:"column:water_sensor_50" json:"water_sensor_50"`
	WaterSensor25 bool          `gorm:"column:water_sensor_25" json:"water_sensor_25"`
	Source        ReadingSource `gorm:"type:varchar(10);check:source IN ('file','direct','fallback','mock')" json:"source"`
	CreatedAt     time.Time     `gorm:"index;autoCreateTime:false" json:"created_at"`
}
