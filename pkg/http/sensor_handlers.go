package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/plant-care-service/pkg/models"
	"liyu1981.xyz/plant-care-service/pkg/planter"
)

const defaultHistoryHours = 24

type WaterSensors struct {
	Level75 bool `json:"level_75"`
	Level50 bool `json:"level_50"`
	Level25 bool `json:"level_25"`
}

type ReadingResponse struct {
	ID           uint                    `json:"id,omitempty"`
	WaterLevel   float64                 `json:"water_level"`
	LightLevel   float64                 `json:"light_level"`
	Temperature  float64                 `json:"temperature"`
	Humidity     float64                 `json:"humidity"`
	Moisture     float64                 `json:"moisture"`
	WaterSensors WaterSensors            `json:"water_sensors"`
	WaterStatus  string                  `json:"water_status"`
	Source       models.ReadingSource    `json:"source"`
	Timestamp    time.Time               `json:"timestamp"`
	Mock         bool                    `json:"mock,omitempty"`
	Watering     *planter.WateringReport `json:"watering,omitempty"`
}

func NewReadingResponse(reading *models.SensorReading) *ReadingResponse {
	return &ReadingResponse{
		ID:          reading.ID,
		WaterLevel:  reading.WaterLevel,
		LightLevel:  reading.LightLevel,
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		Moisture:    reading.Moisture,
		WaterSensors: WaterSensors{
			Level75: reading.WaterSensor75,
			Level50: reading.WaterSensor50,
			Level25: reading.WaterSensor25,
		},
		WaterStatus: planter.WaterStatus(reading),
		Source:      reading.Source,
		Timestamp:   reading.CreatedAt,
		Mock:        reading.Source == models.ReadingSourceMock,
	}
}

var positiveIntSchema = z.Int().GT(0).Required()

// positiveQuery reads an optional positive integer parameter. Absent,
// non-numeric and non-positive values all count as not given.
func positiveQuery(c *gin.Context, key string) (int, bool) {
	raw, found := c.GetQuery(key)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if issues := positiveIntSchema.Validate(&n); len(issues) > 0 {
		return 0, false
	}
	return n, true
}

func (rs *RestfulServer) respondReadings(c *gin.Context, readings []models.SensorReading) {
	response := make([]*ReadingResponse, 0, len(readings))
	for i := range readings {
		response = append(response, NewReadingResponse(&readings[i]))
	}
	c.JSON(http.StatusOK, response)
}

// currentReading polls the snapshot file when one is configured, the latest
// stored reading otherwise.
func (rs *RestfulServer) currentReading() (*models.SensorReading, error) {
	if rs.FileSource != nil {
		result, err := rs.FileSource.Poll()
		if err != nil {
			return nil, err
		}
		if result.Persisted {
			rs.Live.Broadcast(NewReadingResponse(result.Reading))
		}
		return result.Reading, nil
	}

	reading, err := rs.Planter.Reading.Latest()
	if errors.Is(err, planter.ErrNoReadings) && rs.MockOnEmpty {
		mock := planter.DefaultSnapshot.Normalize(models.ReadingSourceMock)
		mock.CreatedAt = time.Now().UTC()
		return mock, nil
	}
	return reading, err
}

func (rs *RestfulServer) GetSensors(c *gin.Context) {
	if hours, ok := positiveQuery(c, "hours"); ok {
		readings, err := rs.Planter.Reading.Recent(hours)
		if err != nil {
			respondError(c, err)
			return
		}
		rs.respondReadings(c, readings)
		return
	}

	if limit, ok := positiveQuery(c, "limit"); ok {
		readings, err := rs.Planter.Reading.List(limit)
		if err != nil {
			respondError(c, err)
			return
		}
		rs.respondReadings(c, readings)
		return
	}

	var plantID uint64
	if raw := c.Query("plantId"); raw != "" {
		var err error
		if plantID, err = strconv.ParseUint(raw, 10, 0); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plantId"})
			return
		}
	}

	reading, err := rs.currentReading()
	if err != nil {
		respondError(c, err)
		return
	}

	response := NewReadingResponse(reading)
	if plantID > 0 {
		if response.Watering, err = rs.Planter.Watering.StatusForPlant(uint(plantID)); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, response)
}

func (rs *RestfulServer) PostSensors(c *gin.Context) {
	var submission planter.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		badJSON(c)
		return
	}

	if err := submission.Validate(); err != nil {
		respondError(c, err)
		return
	}

	stored, err := rs.Planter.Reading.Insert(submission.ToReading())
	if err != nil {
		respondError(c, err)
		return
	}

	response := NewReadingResponse(stored)
	rs.Live.Broadcast(response)
	c.JSON(http.StatusCreated, response)
}

func (rs *RestfulServer) CleanupSensors(c *gin.Context) {
	days := rs.RetentionDays
	if raw, found := c.GetQuery("days"); found {
		var err error
		if days, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days", "fields": []string{"days"}})
			return
		}
	}

	deleted, err := rs.Planter.Reading.Cleanup(days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "days": days})
}

func (rs *RestfulServer) GetSensorHistory(c *gin.Context) {
	hours, ok := positiveQuery(c, "hours")
	if !ok {
		hours = defaultHistoryHours
	}

	history, err := rs.Planter.Reading.History(c.Param("metric"), hours)
	if err != nil {
		var verr *planter.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "unknown metric " + strconv.Quote(c.Param("metric")),
				"fields":  verr.Fields(),
				"metrics": planter.HistoryMetricNames(),
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
