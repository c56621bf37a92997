package aqi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airsense.xyz/aqi-prediction-service/pkg/common"
	_ "airsense.xyz/aqi-prediction-service/pkg/testing"
)

func drainSignals(sub *Subscription) int {
	count := 0
	for {
		select {
		case _, ok := <-sub.C:
			if !ok {
				return count
			}
			count++
		case <-time.After(100 * time.Millisecond):
			return count
		}
	}
}

func TestFeedHubUserScoped(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewFeedHub()

	subA := hub.Subscribe(1)
	defer subA.Close()
	subB := hub.Subscribe(2)
	defer subB.Close()

	hub.Publish(1)
	hub.Publish(1)
	hub.Publish(1)
	hub.Publish(2)

	assert.Equal(t, 3, drainSignals(subA))
	assert.Equal(t, 1, drainSignals(subB))
}

func TestFeedHubMultipleSubscribersSameUser(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewFeedHub()

	first := hub.Subscribe(1)
	defer first.Close()
	second := hub.Subscribe(1)
	defer second.Close()

	hub.Publish(1)

	assert.Equal(t, 1, drainSignals(first))
	assert.Equal(t, 1, drainSignals(second))
}

func TestSubscriptionClose(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewFeedHub()

	sub := hub.Subscribe(1)
	sub.Close()
	sub.Close() // safe to repeat

	// channel is closed, reads do not block
	_, ok := <-sub.C
	assert.False(t, ok)

	// publishing after close must not panic or resurrect the subscriber
	hub.Publish(1)

	hub.mu.Lock()
	_, exists := hub.subs[1]
	hub.mu.Unlock()
	assert.False(t, exists)
}

func TestFeedHubSlowSubscriberDropsNotBlocks(t *testing.T) {
	common.SetTestLoggerNop()

	hub := NewFeedHub()
	sub := hub.Subscribe(1)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriptionBuffer+10; i++ {
			hub.Publish(1)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber buffer")
	}

	require.Equal(t, subscriptionBuffer, drainSignals(sub))
}
