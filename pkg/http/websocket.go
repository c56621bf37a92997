package http

import (
	"context"
	"net/http"

	"airsense.xyz/aqi-prediction-service/pkg/aqi"
	"airsense.xyz/aqi-prediction-service/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveWebSocket streams full "most recent predictions" snapshots: one on
// connect, then one per insert for the signed-in user. Snapshots, not
// deltas, so a push and a manual fetch always converge on the same rows.
func (rs *RestfulServer) LiveWebSocket(c *gin.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldAQICategory, common.LoggerCategoryAQIFeed),
	)

	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token query parameter"})
		return
	}

	claims, err := rs.Auth.ValidateToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Read pump: detect client disconnect
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sub := rs.Aqi.Feed.Subscribe(claims.UserID)
	defer sub.Close()

	writeSnapshot := func() error {
		predictions, err := rs.Aqi.Prediction.ListPredictions(claims.UserID, aqi.ChartLimit)
		if err != nil {
			// keep the last snapshot the client has, stale beats empty
			logger.Warn("snapshot query failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
			return nil
		}
		return conn.WriteJSON(gin.H{
			"type": "predictions_snapshot",
			"data": predictions,
		})
	}

	if err := writeSnapshot(); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.C:
			if !ok {
				return
			}
			if err := writeSnapshot(); err != nil {
				logger.Warn("ws write error", zap.Error(err))
				return
			}
		}
	}
}
