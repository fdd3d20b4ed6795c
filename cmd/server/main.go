package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/plant-care-service/pkg/common"
	"liyu1981.xyz/plant-care-service/pkg/db"
	planterHttp "liyu1981.xyz/plant-care-service/pkg/http"
	"liyu1981.xyz/plant-care-service/pkg/planter"
)

func main() {
	var err error

	logger := common.GetLogger()

	if err = godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded, using process environment only (copy .env.example to .env in development)")
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var dbInstance *db.DB
	switch cfg.DBType {
	case common.DBTypeFile:
		dbInstance = db.GetInstance(db.UseSqliteDialector(cfg.DBPath))
	case common.DBTypeMemory:
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	}

	if cfg.SeedPlants {
		if _, err := dbInstance.SeedPlants(time.Now().UTC()); err != nil {
			log.Fatalf("Failed to seed plants: %v", err)
		}
	}

	planterCore := (&planter.Planter{Db: *dbInstance}).WithDefaultServices()

	var fileSource *planter.FileSource
	if cfg.SensorFile != "" {
		fileSource = planter.NewFileSource(cfg.SensorFile, planterCore.Reading)
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rs := &planterHttp.RestfulServer{
		Server:        gin.New(),
		Planter:       planterCore,
		FileSource:    fileSource,
		Limiters:      planter.NewClientLimiters(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		MockOnEmpty:   cfg.MockOnEmpty,
		RetentionDays: cfg.RetentionDays,
		CorsOrigins:   cfg.CorsOrigins,
	}
	rs.Server.Use(gin.Recovery())
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("db_type", cfg.DBType),
		zap.String("db_path", cfg.DBPath),
		zap.Float64("default_rate", cfg.DefaultRate),
		zap.Int("default_burst", cfg.DefaultBurst),
		zap.String("sensor_file", cfg.SensorFile),
		zap.Int("retention_days", cfg.RetentionDays),
		zap.Bool("mock_on_empty", cfg.MockOnEmpty))

	logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
	if err := rs.Server.Run(cfg.HttpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
