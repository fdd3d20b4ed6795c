package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DBTypeFile   = "file"
	DBTypeMemory = "memory"
)

// Config is the process configuration read from the environment (and .env).
type Config struct {
	DBType        string
	DBPath        string
	HttpHostPort  string
	DefaultRate   float64
	DefaultBurst  int
	SensorFile    string
	RetentionDays int
	MockOnEmpty   bool
	SeedPlants    bool
	CorsOrigins   []string
}

func lookupOr(key, fallback string) string {
	if v, found := os.LookupEnv(key); found {
		return strings.TrimSpace(v)
	}
	return fallback
}

func LoadConfig() (*Config, error) {
	var err error

	cfg := &Config{
		DBType:       lookupOr(EnvKeyPlanterDBType, DBTypeFile),
		DBPath:       lookupOr(EnvKeyPlanterDbPath, "plants.db"),
		HttpHostPort: lookupOr(EnvKeyPlanterHttpHostPort, ""),
		SensorFile:   lookupOr(EnvKeyPlanterSensorFile, DefaultSensorSnapshotPath),
	}

	if cfg.DBType != DBTypeFile && cfg.DBType != DBTypeMemory {
		return nil, fmt.Errorf("unknown %s: %q", EnvKeyPlanterDBType, cfg.DBType)
	}

	if cfg.HttpHostPort == "" {
		// fallback to default http port
		cfg.HttpHostPort = ":1080"
	}

	if cfg.DefaultRate, err = strconv.ParseFloat(lookupOr(EnvKeyPlanterDefaultRate, "5"), 64); err != nil {
		return nil, fmt.Errorf("invalid %s, should be a float64 value: %w", EnvKeyPlanterDefaultRate, err)
	}

	if cfg.DefaultBurst, err = strconv.Atoi(lookupOr(EnvKeyPlanterDefaultBurst, "10")); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", EnvKeyPlanterDefaultBurst, err)
	}

	if cfg.RetentionDays, err = strconv.Atoi(lookupOr(EnvKeyPlanterRetentionDays, "30")); err != nil || cfg.RetentionDays < 0 {
		return nil, fmt.Errorf("invalid %s, should be a non-negative int value", EnvKeyPlanterRetentionDays)
	}

	if cfg.MockOnEmpty, err = strconv.ParseBool(lookupOr(EnvKeyPlanterMockOnEmpty, "false")); err != nil {
		return nil, fmt.Errorf("invalid %s, should be true or false: %w", EnvKeyPlanterMockOnEmpty, err)
	}

	if cfg.SeedPlants, err = strconv.ParseBool(lookupOr(EnvKeyPlanterSeedPlants, "true")); err != nil {
		return nil, fmt.Errorf("invalid %s, should be true or false: %w", EnvKeyPlanterSeedPlants, err)
	}

	for _, origin := range strings.Split(lookupOr(EnvKeyPlanterCorsOrigins, "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CorsOrigins = append(cfg.CorsOrigins, origin)
		}
	}

	return cfg, nil
}
