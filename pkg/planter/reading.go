package planter

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/metrics"
	"liyu1981.xyz/plant-care-service/pkg/models"
)

const newestFirst = "created_at desc, id desc"

func (i *Planter) insertReading(input *models.SensorReading) (*models.SensorReading, error) {
	logger := common.GetCategoryLogger(common.LoggerNamePlanterCore, common.LoggerCategoryReading)

	reading := *input
	reading.ID = 0
	reading.CreatedAt = i.now()
	if reading.Source == "" {
		reading.Source = models.ReadingSourceDirect
	}

	logger.Info("Received sensor reading", zap.Reflect("reading", reading))

	if err := i.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	metrics.ReadingsIngested.WithLabelValues(string(reading.Source)).Inc()
	logger.Info("Stored sensor reading", zap.Uint("id", reading.ID), zap.String("source", string(reading.Source)))

	return &reading, nil
}

func (i *Planter) latestReading() (*models.SensorReading, error) {
	var reading models.SensorReading
	err := i.Db.Conn.Order(newestFirst).First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoReadings
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (i *Planter) listReadings(limit int) ([]models.SensorReading, error) {
	readings := []models.SensorReading{}
	query := i.Db.Conn.Order(newestFirst)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&readings).Error
	return readings, err
}

func (i *Planter) recentReadings(hours int) ([]models.SensorReading, error) {
	if hours <= 0 {
		return nil, invalid("hours")
	}

	cutoff := i.now().Add(-time.Duration(hours) * time.Hour)
	readings := []models.SensorReading{}
	err := i.Db.Conn.
		Where("created_at >= ?", cutoff).
		Order(newestFirst).
		Find(&readings).Error
	return readings, err
}

func (i *Planter) cleanupReadings(daysToKeep int) (int64, error) {
	if daysToKeep < 0 {
		return 0, invalid("days")
	}

	logger := common.GetCategoryLogger(common.LoggerNamePlanterCore, common.LoggerCategoryReading)

	cutoff := i.now().Add(-time.Duration(daysToKeep) * 24 * time.Hour)
	result := i.Db.Conn.Where("created_at < ?", cutoff).Delete(&models.SensorReading{})
	if result.Error != nil {
		return 0, result.Error
	}

	metrics.ReadingsPruned.Add(float64(result.RowsAffected))
	logger.Info("Pruned sensor readings",
		zap.Int("days_to_keep", daysToKeep),
		zap.Int64("deleted", result.RowsAffected))

	return result.RowsAffected, nil
}

type IReadingImpl struct {
	core *Planter
}

func (ir *IReadingImpl) Insert(reading *models.SensorReading) (*models.SensorReading, error) {
	return ir.core.insertReading(reading)
}

func (ir *IReadingImpl) Latest() (*models.SensorReading, error) {
	return ir.core.latestReading()
}

func (ir *IReadingImpl) List(limit int) ([]models.SensorReading, error) {
	return ir.core.listReadings(limit)
}

func (ir *IReadingImpl) Recent(hours int) ([]models.SensorReading, error) {
	return ir.core.recentReadings(hours)
}

func (ir *IReadingImpl) Cleanup(daysToKeep int) (int64, error) {
	return ir.core.cleanupReadings(daysToKeep)
}

func (ir *IReadingImpl) History(metric string, hours int) (*History, error) {
	return ir.core.readingHistory(metric, hours)
}

func (i *Planter) GetIReading() IReading {
	return &IReadingImpl{core: i}
}
