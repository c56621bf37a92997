package aqi

import (
	"context"
	"sync"
	"time"

	"airsense.xyz/aqi-prediction-service/pkg/db"
	"airsense.xyz/aqi-prediction-service/pkg/geocode"
	"airsense.xyz/aqi-prediction-service/pkg/models"
	"github.com/jonboulle/clockwork"
)

type IPrediction interface {
	Predict(ctx context.Context, userID uint, input *PredictionInput) (*models.Prediction, error)
	ListPredictions(userID uint, limit int) ([]models.Prediction, error)
}

type IAdvisory interface {
	AdvisoriesFor(aqiValue int) []Advisory
}

type INotification interface {
	ListNotifications(userID uint) []models.Notification
	UnreadCount(userID uint) int
	MarkAllRead(userID uint)
}

type IFeed interface {
	Subscribe(userID uint) *Subscription
	Publish(userID uint)
}

type AQI struct {
	Db       db.DB
	Geocoder geocode.Geocoder
	Clock    clockwork.Clock

	Prediction   IPrediction
	Advisory     IAdvisory
	Notification INotification
	Feed         IFeed

	inboxMu sync.Mutex
	inboxes map[uint][]models.Notification
}

type ServiceOpts struct {
	Prediction   IPrediction
	Advisory     IAdvisory
	Notification INotification
	Feed         IFeed
}

func (a *AQI) WithServices(opts ServiceOpts) *AQI {
	if opts.Prediction != nil {
		a.Prediction = opts.Prediction
	}
	if opts.Advisory != nil {
		a.Advisory = opts.Advisory
	}
	if opts.Notification != nil {
		a.Notification = opts.Notification
	}
	if opts.Feed != nil {
		a.Feed = opts.Feed
	}
	return a
}

func (a *AQI) now() time.Time {
	if a.Clock != nil {
		return a.Clock.Now()
	}
	return time.Now()
}
