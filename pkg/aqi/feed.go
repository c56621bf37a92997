package aqi

import (
	"sync"

	"airsense.xyz/aqi-prediction-service/pkg/common"
	"go.uber.org/zap"
)

// Room for a short burst of insert signals before a slow consumer starts
// dropping; a dropped signal is harmless because every signal triggers the
// same full snapshot re-query.
const subscriptionBuffer = 16

// Subscription is one consumer's handle on the change feed. C carries one
// signal per insert for the subscribed user; the payload is re-queried by
// the consumer, not carried on the channel.
type Subscription struct {
	C <-chan struct{}

	ch     chan struct{}
	userID uint
	hub    *FeedHub
	once   sync.Once
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

// FeedHub is the in-process change feed over prediction inserts, keyed by
// owning user so one user's inserts never signal another user's subscribers.
type FeedHub struct {
	mu   sync.Mutex
	subs map[uint]map[*Subscription]struct{}
}

func NewFeedHub() *FeedHub {
	return &FeedHub{subs: make(map[uint]map[*Subscription]struct{})}
}

func (h *FeedHub) Subscribe(userID uint) *Subscription {
	ch := make(chan struct{}, subscriptionBuffer)
	sub := &Subscription{C: ch, ch: ch, userID: userID, hub: h}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*Subscription]struct{})
	}
	h.subs[userID][sub] = struct{}{}
	return sub
}

// Publish fires after an insert for userID is durable.
func (h *FeedHub) Publish(userID uint) {
	logger := common.GetLoggerWith(
		common.LoggerNameAQICore,
		zap.String(common.LoggerFieldAQICategory, common.LoggerCategoryAQIFeed),
	)

	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[userID] {
		select {
		case sub.ch <- struct{}{}:
		default:
			logger.Warn("Dropped feed signal for slow subscriber", zap.Uint("user_id", userID))
		}
	}
}

func (h *FeedHub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.subs[sub.userID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, sub.userID)
		}
	}
}
