package planter

import (
	z "github.com/Oudwins/zog"
	"liyu1981.xyz/plant-care-service/pkg/models"
)

// WaterLevel is the coarse tank level derived from the three float switches
// mounted at 75%, 50% and 25% of the reservoir.
type WaterLevel struct {
	Percent float64
	Level75 bool
	Level50 bool
	Level25 bool
}

var waterLevelCodes = map[int]WaterLevel{
	7: {Percent: 100, Level75: true, Level50: true, Level25: true},
	3: {Percent: 70, Level50: true, Level25: true},
	1: {Percent: 50, Level50: true},
}

var lowWaterLevel = WaterLevel{Percent: 15}

// WaterLevelFromCode maps the sensor's discrete code. Codes other than 7, 3
// and 1 all mean "below every switch".
func WaterLevelFromCode(code int) WaterLevel {
	if level, ok := waterLevelCodes[code]; ok {
		return level
	}
	return lowWaterLevel
}

// FractionToPercent converts a 0..1 sensor fraction. The value is not clamped.
func FractionToPercent(fraction float64) float64 {
	return fraction * 100
}

// WaterStatus is the dashboard label for the tank switches.
func WaterStatus(reading *models.SensorReading) string {
	switch {
	case reading.WaterSensor75:
		return "High"
	case reading.WaterSensor50:
		return "Medium"
	case reading.WaterSensor25:
		return "Low"
	default:
		return "Critical"
	}
}

// RawSnapshot is the JSON document the sensor hardware writes to disk.
type RawSnapshot struct {
	Moisture   float64 `json:"moisture"`
	Light      float64 `json:"light"`
	Temp       float64 `json:"temp"`
	Humidity   float64 `json:"humidity"`
	WaterLevel int     `json:"waterLevel"`
}

// DefaultSnapshot stands in for a missing or unreadable snapshot file.
var DefaultSnapshot = RawSnapshot{
	Moisture:   0.5,
	Light:      0.5,
	Temp:       22,
	Humidity:   50,
	WaterLevel: 3,
}

func (s RawSnapshot) Normalize(source models.ReadingSource) *models.SensorReading {
	level := WaterLevelFromCode(s.WaterLevel)
	return &models.SensorReading{
		WaterLevel:    level.Percent,
		LightLevel:    FractionToPercent(s.Light),
		Moisture:      FractionToPercent(s.Moisture),
		Humidity:      s.Humidity,
		Temperature:   s.Temp,
		WaterSensor75: level.Level75,
		WaterSensor50: level.Level50,
		WaterSensor25: level.Level25,
		Source:        source,
	}
}

type ThresholdState struct {
	Level75 *bool `json:"level_75"`
	Level50 *bool `json:"level_50"`
	Level25 *bool `json:"level_25"`
}

// Submission is a reading posted directly by a sensor client, already in
// percentages.
type Submission struct {
	WaterLevel    *float64        `json:"water_level"`
	LightLevel    *float64        `json:"light_level"`
	Temperature   *float64        `json:"temperature"`
	Humidity      *float64        `json:"humidity"`
	Moisture      *float64        `json:"moisture"`
	WaterSensor75 *bool           `json:"water_sensor_75"`
	WaterSensor50 *bool           `json:"water_sensor_50"`
	WaterSensor25 *bool           `json:"water_sensor_25"`
	WaterSensors  *ThresholdState `json:"water_sensors"`
}

var percentSchema = z.Float64().GTE(0).LTE(100)

func (s *Submission) Validate() error {
	verr := &ValidationError{}

	required := []struct {
		name  string
		value *float64
	}{
		{"water_level", s.WaterLevel},
		{"light_level", s.LightLevel},
		{"temperature", s.Temperature},
		{"humidity", s.Humidity},
		{"moisture", s.Moisture},
	}
	for _, field := range required {
		if field.value == nil {
			verr.Missing = append(verr.Missing, field.name)
		}
	}
	if len(verr.Missing) > 0 {
		return verr
	}

	for _, field := range required {
		if field.name == "temperature" {
			continue
		}
		v := *field.value
		if issues := percentSchema.Validate(&v); len(issues) > 0 {
			verr.Invalid = append(verr.Invalid, field.name)
		}
	}

	return verr.orNil()
}

func firstSet(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}

// ToReading assumes Validate passed.
func (s *Submission) ToReading() *models.SensorReading {
	nested := ThresholdState{}
	if s.WaterSensors != nil {
		nested = *s.WaterSensors
	}

	return &models.SensorReading{
		WaterLevel:    *s.WaterLevel,
		LightLevel:    *s.LightLevel,
		Temperature:   *s.Temperature,
		Humidity:      *s.Humidity,
		Moisture:      *s.Moisture,
		WaterSensor75: firstSet(s.WaterSensor75, nested.Level75),
		WaterSensor50: firstSet(s.WaterSensor50, nested.Level50),
		WaterSensor25: firstSet(s.WaterSensor25, nested.Level25),
		Source:        models.ReadingSourceDirect,
	}
}
