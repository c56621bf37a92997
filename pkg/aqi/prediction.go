package aqi

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"airsense.xyz/aqi-prediction-service/pkg/common"
	"airsense.xyz/aqi-prediction-service/pkg/models"
	"go.uber.org/zap"
)

const (
	// how many recent rows the list view and the chart view pull
	ListLimitDefault = 10
	ChartLimit       = 7
	ListLimitMax     = 50
)

type PredictionInput struct {
	Location  string
	Date      time.Time
	TimeOfDay models.TimeOfDay
}

// pseudoForecast is the bounded random score standing in for a model.
func pseudoForecast() int {
	return Clamp(rand.Intn(200) + 50)
}

func (a *AQI) predict(ctx context.Context, userID uint, input *PredictionInput) (*models.Prediction, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAQICore,
		zap.String(common.LoggerFieldAQICategory, common.LoggerCategoryAQIPrediction),
	)

	if a.Geocoder == nil {
		return nil, fmt.Errorf("geocoder not available")
	}

	place, err := a.Geocoder.Forward(ctx, input.Location)
	if err != nil {
		// no write happens on any geocoding failure, NotFound included
		return nil, err
	}

	prediction := models.Prediction{
		UserID:         userID,
		Location:       place.DisplayName,
		Latitude:       place.Lat,
		Longitude:      place.Lon,
		PredictedAQI:   pseudoForecast(),
		PredictionDate: input.Date,
		PredictionTime: input.TimeOfDay,
		CreatedAt:      a.now(),
	}

	logger.Info("Generated prediction", zap.Reflect("prediction", prediction))

	if err := a.Db.Conn.Create(&prediction).Error; err != nil {
		return nil, err
	}

	logger.Info("Prediction saved", zap.Reflect("prediction", prediction))

	if a.Feed != nil {
		a.Feed.Publish(userID)
	}

	return &prediction, nil
}

func (a *AQI) listPredictions(userID uint, limit int) ([]models.Prediction, error) {
	if limit <= 0 {
		limit = ListLimitDefault
	}
	if limit > ListLimitMax {
		limit = ListLimitMax
	}

	var predictions []models.Prediction
	err := a.Db.Conn.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&predictions).Error
	return predictions, err
}

type IPredictionImpl struct {
	aqi *AQI
}

func (ip *IPredictionImpl) Predict(ctx context.Context, userID uint, input *PredictionInput) (*models.Prediction, error) {
	return ip.aqi.predict(ctx, userID, input)
}

func (ip *IPredictionImpl) ListPredictions(userID uint, limit int) ([]models.Prediction, error) {
	return ip.aqi.listPredictions(userID, limit)
}

func (a *AQI) GetIPrediction() IPrediction {
	return &IPredictionImpl{aqi: a}
}
