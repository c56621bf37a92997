package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"airsense.xyz/aqi-prediction-service/pkg/aqi"
	"airsense.xyz/aqi-prediction-service/pkg/auth"
	"airsense.xyz/aqi-prediction-service/pkg/common"
	"airsense.xyz/aqi-prediction-service/pkg/db"
	"airsense.xyz/aqi-prediction-service/pkg/geocode"
	aqiHttp "airsense.xyz/aqi-prediction-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	aqiDbType := os.Getenv(common.EnvKeyAQIDBType)
	switch aqiDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown AQI_DB_TYPE: " + aqiDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAQIHttpHostPort))

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyAQIJwtSecret))
	if jwtSecret == "" {
		log.Fatal("AQI_JWT_SECRET not set in .env")
	}

	jwtExpiryHours := 72
	if raw := os.Getenv(common.EnvKeyAQIJwtExpiryHours); raw != "" {
		if jwtExpiryHours, err = strconv.Atoi(raw); err != nil {
			log.Fatal("Invalid AQI_JWT_EXPIRY_HOURS, should be an int value")
		}
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyAQIDefaultRate), 64); err != nil {
		log.Fatal("Invalid AQI_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyAQIDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid AQI_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	geocoderTimeout := 10 * time.Second
	if raw := os.Getenv(common.EnvKeyAQIGeocoderTimeoutSeconds); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatal("Invalid AQI_GEOCODER_TIMEOUT_SECONDS, should be an int value")
		}
		geocoderTimeout = time.Duration(seconds) * time.Second
	}

	logger := common.GetLogger()

	aqiCore := aqi.AQI{
		Db:       *dbInstance,
		Geocoder: geocode.NewClient(os.Getenv(common.EnvKeyAQIGeocoderBaseURL), geocoderTimeout),
		Feed:     aqi.NewFeedHub(),
	}
	aqiCore.WithServices(aqi.ServiceOpts{
		Prediction:   aqiCore.GetIPrediction(),
		Advisory:     aqiCore.GetIAdvisory(),
		Notification: aqiCore.GetINotification(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &aqiHttp.RestfulServer{
		Server:           gin.Default(),
		Aqi:              &aqiCore,
		Auth:             auth.NewService(jwtSecret, jwtExpiryHours),
		RateLimiterStore: aqi.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		AllowedOrigins:   os.Getenv(common.EnvKeyAQICorsAllowedOrigins),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
