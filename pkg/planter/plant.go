package planter

import (
	"errors"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/metrics"
	"liyu1981.xyz/plant-care-service/pkg/models"
)

// PlantInput carries the writable profile attributes. A nil field was not
// supplied: Create requires all of them, Update applies only the non-nil ones.
type PlantInput struct {
	Name              *string  `json:"name"`
	WaterAmount       *float64 `json:"water_amount"`
	WateringFrequency *int     `json:"watering_frequency"`
	LightMin          *float64 `json:"light_min"`
	LightMax          *float64 `json:"light_max"`
	SoilType          *string  `json:"soil_type"`
	SoilMoistureMin   *float64 `json:"soil_moisture_min"`
	SoilMoistureMax   *float64 `json:"soil_moisture_max"`
	HumidityMin       *float64 `json:"humidity_min"`
	HumidityMax       *float64 `json:"humidity_max"`
	TemperatureMin    *float64 `json:"temperature_min"`
	TemperatureMax    *float64 `json:"temperature_max"`
}

var (
	plantNameSchema    = z.String().Min(1).Required()
	waterAmountSchema  = z.Float64().GT(0).Required()
	wateringFreqSchema = z.Int().GT(0).Required()
)

type plantColumn struct {
	name    string
	present bool
	value   any
}

// columns lists every attribute in a fixed order, with its column name.
func (p *PlantInput) columns() []plantColumn {
	col := func(name string, present bool, value func() any) plantColumn {
		c := plantColumn{name: name, present: present}
		if present {
			c.value = value()
		}
		return c
	}
	return []plantColumn{
		col("name", p.Name != nil, func() any { return *p.Name }),
		col("water_amount", p.WaterAmount != nil, func() any { return *p.WaterAmount }),
		col("watering_frequency", p.WateringFrequency != nil, func() any { return *p.WateringFrequency }),
		col("light_min", p.LightMin != nil, func() any { return *p.LightMin }),
		col("light_max", p.LightMax != nil, func() any { return *p.LightMax }),
		col("soil_type", p.SoilType != nil, func() any { return *p.SoilType }),
		col("soil_moisture_min", p.SoilMoistureMin != nil, func() any { return *p.SoilMoistureMin }),
		col("soil_moisture_max", p.SoilMoistureMax != nil, func() any { return *p.SoilMoistureMax }),
		col("humidity_min", p.HumidityMin != nil, func() any { return *p.HumidityMin }),
		col("humidity_max", p.HumidityMax != nil, func() any { return *p.HumidityMax }),
		col("temperature_min", p.TemperatureMin != nil, func() any { return *p.TemperatureMin }),
		col("temperature_max", p.TemperatureMax != nil, func() any { return *p.TemperatureMax }),
	}
}

// validateValues checks the supplied fields that carry constraints.
func (p *PlantInput) validateValues(verr *ValidationError) {
	if p.Name != nil {
		if issues := plantNameSchema.Validate(p.Name); len(issues) > 0 {
			verr.Invalid = append(verr.Invalid, "name")
		}
	}
	if p.WaterAmount != nil {
		if issues := waterAmountSchema.Validate(p.WaterAmount); len(issues) > 0 {
			verr.Invalid = append(verr.Invalid, "water_amount")
		}
	}
	if p.WateringFrequency != nil {
		if issues := wateringFreqSchema.Validate(p.WateringFrequency); len(issues) > 0 {
			verr.Invalid = append(verr.Invalid, "watering_frequency")
		}
	}
}

func (p *PlantInput) ValidateCreate() error {
	verr := &ValidationError{}
	for _, c := range p.columns() {
		if !c.present {
			verr.Missing = append(verr.Missing, c.name)
		}
	}
	if len(verr.Missing) > 0 {
		return verr
	}
	p.validateValues(verr)
	return verr.orNil()
}

func (p *PlantInput) ValidatePatch() error {
	verr := &ValidationError{}
	p.validateValues(verr)
	return verr.orNil()
}

// Changes is the column -> value map of the supplied fields.
func (p *PlantInput) Changes() map[string]any {
	changes := map[string]any{}
	for _, c := range p.columns() {
		if c.present {
			changes[c.name] = c.value
		}
	}
	return changes
}

func (i *Planter) createPlant(input *PlantInput) (*models.Plant, error) {
	logger := common.GetCategoryLogger(common.LoggerNamePlanterCore, common.LoggerCategoryPlant)

	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}

	now := i.now()
	plant := models.Plant{
		Name:              *input.Name,
		WaterAmount:       *input.WaterAmount,
		WateringFrequency: *input.WateringFrequency,
		LightMin:          *input.LightMin,
		LightMax:          *input.LightMax,
		SoilType:          *input.SoilType,
		SoilMoistureMin:   *input.SoilMoistureMin,
		SoilMoistureMax:   *input.SoilMoistureMax,
		HumidityMin:       *input.HumidityMin,
		HumidityMax:       *input.HumidityMax,
		TemperatureMin:    *input.TemperatureMin,
		TemperatureMax:    *input.TemperatureMax,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := i.Db.Conn.Create(&plant).Error; err != nil {
		return nil, err
	}

	logger.Info("Created plant profile", zap.Reflect("plant", plant))
	return &plant, nil
}

func (i *Planter) getPlant(id uint) (*models.Plant, error) {
	var plant models.Plant
	err := i.Db.Conn.First(&plant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (i *Planter) getAllPlants() ([]models.Plant, error) {
	plants := []models.Plant{}
	err := i.Db.Conn.Order("name asc, id asc").Find(&plants).Error
	return plants, err
}

func (i *Planter) updatePlant(id uint, patch *PlantInput) (*models.Plant, error) {
	logger := common.GetCategoryLogger(common.LoggerNamePlanterCore, common.LoggerCategoryPlant)

	if err := patch.ValidatePatch(); err != nil {
		return nil, err
	}

	plant, err := i.getPlant(id)
	if err != nil {
		return nil, err
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return plant, nil
	}
	changes["updated_at"] = i.now()

	if err := i.Db.Conn.Model(&models.Plant{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}

	logger.Info("Updated plant profile", zap.Uint("id", id), zap.Any("changes", changes))
	return i.getPlant(id)
}

func (i *Planter) deletePlant(id uint) (bool, error) {
	logger := common.GetCategoryLogger(common.LoggerNamePlanterCore, common.LoggerCategoryPlant)

	result := i.Db.Conn.Delete(&models.Plant{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected > 0 {
		logger.Info("Deleted plant profile", zap.Uint("id", id))
	}
	return result.RowsAffected > 0, nil
}

func (i *Planter) markPlantWatered(id uint) (*models.Plant, error) {
	logger := common.GetCategoryLogger(common.LoggerNamePlanterCore, common.LoggerCategoryWatering)

	now := i.now()
	result := i.Db.Conn.Model(&models.Plant{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_watered_at": now, "updated_at": now})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPlantNotFound
	}

	metrics.PlantsWatered.Inc()
	logger.Info("Marked plant as watered", zap.Uint("id", id), zap.Time("last_watered_at", now))
	return i.getPlant(id)
}

type IPlantImpl struct {
	core *Planter
}

func (ip *IPlantImpl) Create(input *PlantInput) (*models.Plant, error) {
	return ip.core.createPlant(input)
}

func (ip *IPlantImpl) GetByID(id uint) (*models.Plant, error) {
	return ip.core.getPlant(id)
}

func (ip *IPlantImpl) GetAll() ([]models.Plant, error) {
	return ip.core.getAllPlants()
}

func (ip *IPlantImpl) Update(id uint, patch *PlantInput) (*models.Plant, error) {
	return ip.core.updatePlant(id, patch)
}

func (ip *IPlantImpl) Delete(id uint) (bool, error) {
	return ip.core.deletePlant(id)
}

func (ip *IPlantImpl) MarkWatered(id uint) (*models.Plant, error) {
	return ip.core.markPlantWatered(id)
}

func (i *Planter) GetIPlant() IPlant {
	return &IPlantImpl{core: i}
}
