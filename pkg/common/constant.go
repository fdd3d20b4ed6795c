package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyPlanterDBType string = "PLANTER_DB_TYPE"
	EnvKeyPlanterDbPath string = "PLANTER_DB_PATH"

	EnvKeyPlanterHttpHostPort string = "PLANTER_HTTP_HOST_PORT"

	EnvKeyPlanterDefaultRate  string = "PLANTER_DEFAULT_RATE"
	EnvKeyPlanterDefaultBurst string = "PLANTER_DEFAULT_BURST"

	EnvKeyPlanterSensorFile    string = "PLANTER_SENSOR_FILE"
	EnvKeyPlanterRetentionDays string = "PLANTER_RETENTION_DAYS"
	EnvKeyPlanterMockOnEmpty   string = "PLANTER_MOCK_ON_EMPTY"
	EnvKeyPlanterSeedPlants    string = "PLANTER_SEED_PLANTS"
	EnvKeyPlanterCorsOrigins   string = "PLANTER_CORS_ORIGINS"

	LoggerNamePlanterCore     string = "planter_core"
	LoggerNameRestfulServer   string = "restful_server"
	LoggerNameSimulator       string = "simulator"
	LoggerFieldCategory       string = "category"
	LoggerCategoryReading     string = "reading"
	LoggerCategoryPlant       string = "plant"
	LoggerCategoryWatering    string = "watering"
	LoggerCategorySource      string = "source"
	LoggerFieldRequestID      string = "request_id"
	HeaderRequestID           string = "X-Request-ID"
	HeaderDeviceID            string = "X-Device-ID"
	DefaultSensorSnapshotPath string = "public/sensor_data.json"
)
