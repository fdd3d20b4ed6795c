package planter

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/plant-care-service/pkg/db"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func GetPlanterWithMemorySqliteDialector(t *testing.T) (*Planter, *testClock) {
	t.Helper()

	dbInstance, err := db.Open(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)

	clock := &testClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	planterInstance := (&Planter{Db: *dbInstance, Now: clock.Now}).WithDefaultServices()

	return planterInstance, clock
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func ptr[T any](v T) *T {
	return &v
}

func basilInput() *PlantInput {
	return &PlantInput{
		Name:              ptr("Basil"),
		WaterAmount:       ptr(250.0),
		WateringFrequency: ptr(2),
		LightMin:          ptr(60.0),
		LightMax:          ptr(90.0),
		SoilType:          ptr("loamy"),
		SoilMoistureMin:   ptr(30.0),
		SoilMoistureMax:   ptr(70.0),
		HumidityMin:       ptr(40.0),
		HumidityMax:       ptr(60.0),
		TemperatureMin:    ptr(18.0),
		TemperatureMax:    ptr(30.0),
	}
}
