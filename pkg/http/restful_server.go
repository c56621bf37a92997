package http

import (
	"airsense.xyz/aqi-prediction-service/pkg/aqi"
	"airsense.xyz/aqi-prediction-service/pkg/auth"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RestfulServer struct {
	Server           *gin.Engine
	Aqi              *aqi.AQI
	Auth             *auth.Service
	RateLimiterStore *aqi.RateLimiterStore
	AllowedOrigins   string
}

func (rs *RestfulServer) GetLimiter(userID uint) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(userID)
	}
}

func (rs *RestfulServer) CheckUserLimiter(userID uint) bool {
	limiter := rs.GetLimiter(userID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(userID uint, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(userID, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(SetupCORS(rs.AllowedOrigins))

	rs.Server.GET("/healthz", rs.HealthCheck)

	authRoutes := rs.Server.Group("/auth")
	{
		authRoutes.POST("/register", rs.Register)
		authRoutes.POST("/login", rs.Login)
		authRoutes.POST("/logout", rs.Logout)
	}

	// token goes over a query parameter here because browsers cannot set
	// headers on a websocket dial
	rs.Server.GET("/live", rs.LiveWebSocket)

	api := rs.Server.Group("/api", rs.RequireAuth)
	{
		api.GET("/dashboard", rs.GetDashboard)
		api.POST("/predictions", rs.PostPrediction)
		api.GET("/predictions", rs.GetPredictions)
		api.GET("/predictions/export.csv", rs.ExportPredictions)
		api.GET("/health/advisories", rs.GetAdvisories)
		api.GET("/analytics", rs.GetAnalytics)
		api.GET("/notifications", rs.GetNotifications)
		api.POST("/notifications/read-all", rs.MarkNotificationsRead)
		api.POST("/limiter", rs.PostLimiter)
	}
}
