package aqi

import (
	"time"

	"airsense.xyz/aqi-prediction-service/pkg/common"
	"airsense.xyz/aqi-prediction-service/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type notificationSeed struct {
	typ      models.NotificationType
	message  string
	location string
	ago      time.Duration
}

// Every session starts with the same inbox. Rows are never persisted, the
// only mutation is mark-all-read, and the inbox dies with the process.
var notificationSeeds = []notificationSeed{
	{models.NotificationTypeWarning, "AQI in Chennai reached 180 (Unhealthy)", "Chennai", 2 * time.Hour},
	{models.NotificationTypeInfo, "Air quality improved in your area", "Chennai", 5 * time.Hour},
	{models.NotificationTypeWarning, "High pollution expected tomorrow", "Chennai", 24 * time.Hour},
	{models.NotificationTypeSuccess, "AQI dropped to healthy levels", "Chennai", 48 * time.Hour},
}

// seedInbox lazily creates the inbox for a user. Callers must hold inboxMu.
func (a *AQI) seedInbox(userID uint) []models.Notification {
	if a.inboxes == nil {
		a.inboxes = make(map[uint][]models.Notification)
	}
	inbox, ok := a.inboxes[userID]
	if ok {
		return inbox
	}

	now := a.now()
	inbox = common.Mapper(notificationSeeds, func(seed notificationSeed) models.Notification {
		return models.Notification{
			ID:       uuid.NewString(),
			Type:     seed.typ,
			Message:  seed.message,
			Time:     now.Add(-seed.ago),
			Location: seed.location,
		}
	})
	a.inboxes[userID] = inbox
	return inbox
}

func (a *AQI) listNotifications(userID uint) []models.Notification {
	a.inboxMu.Lock()
	defer a.inboxMu.Unlock()

	inbox := a.seedInbox(userID)
	snapshot := make([]models.Notification, len(inbox))
	copy(snapshot, inbox)
	return snapshot
}

func (a *AQI) unreadCount(userID uint) int {
	a.inboxMu.Lock()
	defer a.inboxMu.Unlock()

	return common.Reducer(a.seedInbox(userID), func(count int, n models.Notification) int {
		if !n.Read {
			count++
		}
		return count
	}, 0)
}

// markAllRead replaces the inbox wholesale with a read copy. Idempotent:
// replaying it leaves the same state.
func (a *AQI) markAllRead(userID uint) {
	logger := common.GetLoggerWith(
		common.LoggerNameAQICore,
		zap.String(common.LoggerFieldAQICategory, common.LoggerCategoryAQINotification),
	)

	a.inboxMu.Lock()
	defer a.inboxMu.Unlock()

	a.inboxes[userID] = common.Mapper(a.seedInbox(userID), func(n models.Notification) models.Notification {
		n.Read = true
		return n
	})

	logger.Info("Marked all notifications read", zap.Uint("user_id", userID))
}

type INotificationImpl struct {
	aqi *AQI
}

func (in *INotificationImpl) ListNotifications(userID uint) []models.Notification {
	return in.aqi.listNotifications(userID)
}

func (in *INotificationImpl) UnreadCount(userID uint) int {
	return in.aqi.unreadCount(userID)
}

func (in *INotificationImpl) MarkAllRead(userID uint) {
	in.aqi.markAllRead(userID)
}

func (a *AQI) GetINotification() INotification {
	return &INotificationImpl{aqi: a}
}
