package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/metrics"
	"liyu1981.xyz/plant-care-service/pkg/models"
	"liyu1981.xyz/plant-care-service/pkg/planter"
	_ "liyu1981.xyz/plant-care-service/pkg/testing"
)

func TestWateringRoutes(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	w := doJSON(rs, "POST", "/plants", basilBody())
	require.Equal(t, http.StatusCreated, w.Code)
	plant := decode[models.Plant](t, w)

	w = doJSON(rs, "GET", fmt.Sprintf("/watering?plantId=%d", plant.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[planter.WateringReport](t, w)
	assert.Equal(t, "Basil", report.PlantName)
	assert.True(t, report.NeedsWatering)
	assert.Equal(t, 0.0, report.TimeLeftBeforeWater)
	assert.Equal(t, 150, report.PumpDurationSeconds)
	assert.Equal(t, 250.0, report.WaterAmountMl)

	w = doJSON(rs, "POST", "/watering", map[string]any{"plantId": plant.ID})
	require.Equal(t, http.StatusOK, w.Code)
	confirmation := decode[planter.WateringConfirmation](t, w)
	assert.True(t, confirmation.Success)
	assert.Equal(t, plant.ID, confirmation.PlantID)
	assert.Equal(t, 2, confirmation.NextWateringInDays)

	w = doJSON(rs, "GET", fmt.Sprintf("/watering?plantId=%d", plant.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	report = decode[planter.WateringReport](t, w)
	assert.False(t, report.NeedsWatering)
	assert.Equal(t, 2.0, report.TimeLeftBeforeWater)
	require.NotNil(t, report.LastWateredAt)
}

func TestWateringRoutes_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	tests := []struct {
		method   string
		target   string
		body     any
		expected int
	}{
		{"GET", "/watering", nil, http.StatusBadRequest},
		{"GET", "/watering?plantId=", nil, http.StatusBadRequest},
		{"GET", "/watering?plantId=abc", nil, http.StatusBadRequest},
		{"GET", "/watering?plantId=9999", nil, http.StatusNotFound},
		{"POST", "/watering", map[string]any{}, http.StatusBadRequest},
		{"POST", "/watering", map[string]any{"plantId": "abc"}, http.StatusBadRequest},
		{"POST", "/watering", map[string]any{"plantId": 9999}, http.StatusNotFound},
	}

	for _, tt := range tests {
		w := doJSON(rs, tt.method, tt.target, tt.body)
		assert.Equal(t, tt.expected, w.Code, "%s %s %v", tt.method, tt.target, tt.body)
	}
}

func TestBothWateringRoutesCountWaterings(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	w := doJSON(rs, "POST", "/plants", basilBody())
	require.Equal(t, http.StatusCreated, w.Code)
	plant := decode[models.Plant](t, w)

	before := testutil.ToFloat64(metrics.PlantsWatered)

	require.Equal(t, http.StatusOK, doJSON(rs, "POST", fmt.Sprintf("/plants/%d/water", plant.ID), nil).Code)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PlantsWatered))

	require.Equal(t, http.StatusOK, doJSON(rs, "POST", "/watering", map[string]any{"plantId": plant.ID}).Code)
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.PlantsWatered))

	// a missing plant is not counted
	require.Equal(t, http.StatusNotFound, doJSON(rs, "POST", "/plants/9999/water", nil).Code)
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.PlantsWatered))
}

func TestPostWateringRequiresJSONContentType(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	w := doJSON(rs, "POST", "/plants", basilBody())
	require.Equal(t, http.StatusCreated, w.Code)
	plant := decode[models.Plant](t, w)

	req := doJSONRequest("POST", "/watering", map[string]any{"plantId": plant.ID})
	req.Header.Del("Content-Type")
	w = serve(rs, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]any](t, w)["error"], "Content-Type: application/json")

	fetched, err := rs.Planter.Plant.GetByID(plant.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.LastWateredAt)
}
