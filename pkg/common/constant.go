package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAQIDBType string = "AQI_DB_TYPE"
	EnvKeyAQIDbPath string = "AQI_DB_PATH"

	EnvKeyAQIHttpHostPort string = "AQI_HTTP_HOST_PORT"

	EnvKeyAQIJwtSecret      string = "AQI_JWT_SECRET"
	EnvKeyAQIJwtExpiryHours string = "AQI_JWT_EXPIRY_HOURS"

	EnvKeyAQIGeocoderBaseURL        string = "AQI_GEOCODER_BASE_URL"
	EnvKeyAQIGeocoderTimeoutSeconds string = "AQI_GEOCODER_TIMEOUT_SECONDS"

	EnvKeyAQIDefaultRate  string = "AQI_DEFAULT_RATE"
	EnvKeyAQIDefaultBurst string = "AQI_DEFAULT_BURST"

	EnvKeyAQICorsAllowedOrigins string = "AQI_CORS_ALLOWED_ORIGINS"

	LoggerNameAQICore       string = "aqi_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGeocoder      string = "geocoder"

	LoggerFieldAQICategory string = "category"

	LoggerCategoryAQIPrediction   string = "prediction"
	LoggerCategoryAQINotification string = "notification"
	LoggerCategoryAQIFeed         string = "feed"
	LoggerCategoryAQIAuth         string = "auth"
)
