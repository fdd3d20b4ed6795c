package planter

import (
	"math"
	"slices"
	"time"

	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/models"
)

type historyMetric struct {
	unit  string
	value func(r models.SensorReading) float64
}

var historyMetrics = map[string]historyMetric{
	"water":    {"%", func(r models.SensorReading) float64 { return r.WaterLevel }},
	"light":    {"%", func(r models.SensorReading) float64 { return r.LightLevel }},
	"temp":     {"°C", func(r models.SensorReading) float64 { return r.Temperature }},
	"humidity": {"%", func(r models.SensorReading) float64 { return r.Humidity }},
	"moisture": {"%", func(r models.SensorReading) float64 { return r.Moisture }},
}

type HistoryPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// History is one metric over a trailing window, oldest point first.
type History struct {
	Metric string         `json:"metric"`
	Unit   string         `json:"unit"`
	Hours  int            `json:"hours"`
	Points []HistoryPoint `json:"points"`
	Count  int            `json:"count"`
	Min    float64        `json:"min"`
	Max    float64        `json:"max"`
	Avg    float64        `json:"avg"`
}

func HistoryMetricNames() []string {
	names := make([]string, 0, len(historyMetrics))
	for name := range historyMetrics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func roundTo(value float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(value*p) / p
}

func (i *Planter) readingHistory(metric string, hours int) (*History, error) {
	m, ok := historyMetrics[metric]
	if !ok {
		return nil, invalid("metric")
	}

	readings, err := i.recentReadings(hours)
	if err != nil {
		return nil, err
	}
	slices.Reverse(readings)

	points := common.Mapper(readings, func(r models.SensorReading) HistoryPoint {
		return HistoryPoint{Timestamp: r.CreatedAt, Value: m.value(r)}
	})

	history := &History{
		Metric: metric,
		Unit:   m.unit,
		Hours:  hours,
		Points: points,
		Count:  len(points),
	}
	if len(points) == 0 {
		return history, nil
	}

	history.Min = common.Reducer(points, func(acc float64, p HistoryPoint) float64 { return math.Min(acc, p.Value) }, math.Inf(1))
	history.Max = common.Reducer(points, func(acc float64, p HistoryPoint) float64 { return math.Max(acc, p.Value) }, math.Inf(-1))
	sum := common.Reducer(points, func(acc float64, p HistoryPoint) float64 { return acc + p.Value }, 0)
	history.Avg = roundTo(sum/float64(len(points)), 2)

	return history, nil
}
