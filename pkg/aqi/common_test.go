package aqi

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"airsense.xyz/aqi-prediction-service/pkg/db"
	geomocks "airsense.xyz/aqi-prediction-service/pkg/geocode/mocks"
	"airsense.xyz/aqi-prediction-service/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// feedSpy counts publishes per user while delegating to a real hub, so tests
// can assert on fanout without a mock that would cycle back into this package.
type feedSpy struct {
	*FeedHub

	mu        sync.Mutex
	publishes map[uint]int
}

func newFeedSpy() *feedSpy {
	return &feedSpy{FeedHub: NewFeedHub(), publishes: make(map[uint]int)}
}

func (f *feedSpy) Publish(userID uint) {
	f.mu.Lock()
	f.publishes[userID]++
	f.mu.Unlock()
	f.FeedHub.Publish(userID)
}

func (f *feedSpy) publishCount(userID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.publishes[userID]
}

func GetMockAQIWithMemorySqliteDialector(t *testing.T) (
	*gomock.Controller,
	*AQI,
	*feedSpy,
	*geomocks.MockGeocoder,
) {
	ctrl := gomock.NewController(t)
	mockGeocoder := geomocks.NewMockGeocoder(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	spy := newFeedSpy()
	aqiInstance := &AQI{
		Db:       *dbInstance,
		Geocoder: mockGeocoder,
		Feed:     spy,
	}

	aqiInstance.WithServices(ServiceOpts{
		Prediction:   aqiInstance.GetIPrediction(),
		Advisory:     aqiInstance.GetIAdvisory(),
		Notification: aqiInstance.GetINotification(),
	})

	return ctrl, aqiInstance, spy, mockGeocoder
}

func createTestUser(t *testing.T, aqiObj *AQI) models.User {
	user := models.User{
		Email:    uuid.NewString() + "@example.com",
		Password: "hashed",
		Name:     "Test User",
	}
	require.NoError(t, aqiObj.Db.Conn.Create(&user).Error)
	return user
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
