package planter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/models"
	_ "liyu1981.xyz/plant-care-service/pkg/testing"
)

func TestCreateAndGetPlant(t *testing.T) {
	common.SetTestLoggerNop()

	p, clock := GetPlanterWithMemorySqliteDialector(t)

	created, err := p.Plant.Create(basilInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Basil", created.Name)
	assert.Equal(t, clock.Now(), created.CreatedAt)
	assert.Equal(t, clock.Now(), created.UpdatedAt)
	assert.Nil(t, created.LastWateredAt)

	fetched, err := p.Plant.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, 250.0, fetched.WaterAmount)
	assert.Equal(t, 2, fetched.WateringFrequency)
	assert.Equal(t, "loamy", fetched.SoilType)
	assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))
}

func TestCreatePlantValidation(t *testing.T) {
	common.SetTestLoggerNop()

	p, _ := GetPlanterWithMemorySqliteDialector(t)

	var verr *ValidationError

	_, err := p.Plant.Create(&PlantInput{Name: ptr("Fern")})
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Missing, 11)
	assert.Equal(t, "water_amount", verr.Missing[0])

	input := basilInput()
	input.WaterAmount = ptr(0.0)
	input.WateringFrequency = ptr(-3)
	_, err = p.Plant.Create(input)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"water_amount", "watering_frequency"}, verr.Invalid)

	input = basilInput()
	input.Name = ptr("")
	_, err = p.Plant.Create(input)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Invalid)

	plants, err := p.Plant.GetAll()
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestGetPlantNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	p, _ := GetPlanterWithMemorySqliteDialector(t)

	_, err := p.Plant.GetByID(999)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestGetAllPlantsSortedByName(t *testing.T) {
	common.SetTestLoggerNop()

	p, _ := GetPlanterWithMemorySqliteDialector(t)

	for _, name := range []string{"Tomato", "Aloe Vera", "Mint"} {
		input := basilInput()
		input.Name = ptr(name)
		_, err := p.Plant.Create(input)
		require.NoError(t, err)
	}

	plants, err := p.Plant.GetAll()
	require.NoError(t, err)
	names := common.Mapper(plants, func(plant models.Plant) string { return plant.Name })
	assert.Equal(t, []string{"Aloe Vera", "Mint", "Tomato"}, names)
}

func TestUpdatePlant(t *testing.T) {
	common.SetTestLoggerNop()

	p, clock := GetPlanterWithMemorySqliteDialector(t)

	created, err := p.Plant.Create(basilInput())
	require.NoError(t, err)

	clock.Advance(time.Hour)

	updated, err := p.Plant.Update(created.ID, &PlantInput{WateringFrequency: ptr(3), SoilType: ptr("sandy")})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.WateringFrequency)
	assert.Equal(t, "sandy", updated.SoilType)
	assert.Equal(t, "Basil", updated.Name)
	assert.Equal(t, 250.0, updated.WaterAmount)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdatePlantEmptyPatch(t *testing.T) {
	common.SetTestLoggerNop()

	p, clock := GetPlanterWithMemorySqliteDialector(t)

	created, err := p.Plant.Create(basilInput())
	require.NoError(t, err)

	clock.Advance(time.Hour)

	same, err := p.Plant.Update(created.ID, &PlantInput{})
	require.NoError(t, err)
	assert.True(t, same.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdatePlantErrors(t *testing.T) {
	common.SetTestLoggerNop()

	p, _ := GetPlanterWithMemorySqliteDialector(t)

	_, err := p.Plant.Update(42, &PlantInput{Name: ptr("Ghost")})
	assert.ErrorIs(t, err, ErrPlantNotFound)

	created, err := p.Plant.Create(basilInput())
	require.NoError(t, err)

	var verr *ValidationError
	_, err = p.Plant.Update(created.ID, &PlantInput{WateringFrequency: ptr(0)})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"watering_frequency"}, verr.Invalid)

	fetched, err := p.Plant.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.WateringFrequency)
}

func TestDeletePlant(t *testing.T) {
	common.SetTestLoggerNop()

	p, _ := GetPlanterWithMemorySqliteDialector(t)

	created, err := p.Plant.Create(basilInput())
	require.NoError(t, err)

	deleted, err := p.Plant.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = p.Plant.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = p.Plant.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestMarkWatered(t *testing.T) {
	common.SetTestLoggerNop()

	p, clock := GetPlanterWithMemorySqliteDialector(t)

	created, err := p.Plant.Create(basilInput())
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)

	watered, err := p.Plant.MarkWatered(created.ID)
	require.NoError(t, err)
	require.NotNil(t, watered.LastWateredAt)
	assert.True(t, watered.LastWateredAt.Equal(clock.Now()))
	assert.True(t, watered.UpdatedAt.Equal(clock.Now()))

	_, err = p.Plant.MarkWatered(created.ID + 100)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestPlantChangesOnlySuppliedFields(t *testing.T) {
	changes := (&PlantInput{Name: ptr("Mint"), HumidityMax: ptr(70.0)}).Changes()
	assert.Equal(t, map[string]any{"name": "Mint", "humidity_max": 70.0}, changes)
}
