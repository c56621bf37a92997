package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"airsense.xyz/aqi-prediction-service/pkg/aqi"
	"airsense.xyz/aqi-prediction-service/pkg/common"
	"airsense.xyz/aqi-prediction-service/pkg/geocode"
	"airsense.xyz/aqi-prediction-service/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func authLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldAQICategory, common.LoggerCategoryAQIAuth),
	)
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Required(),
	"Email":    z.String().Email().Required(),
	"Password": z.String().Min(8).Required(),
})

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Email().Required(),
	"Password": z.String().Required(),
})

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	hash, err := rs.Auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Password: hash}
	if err := rs.Aqi.Db.Conn.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	token, err := rs.Auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	authLogger().Info("Registered user", zap.Uint("user_id", user.ID))

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	var user models.User
	if err := rs.Aqi.Db.Conn.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if !rs.Auth.CheckPassword(user.Password, req.Password) {
		authLogger().Info("Rejected login", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := rs.Auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	// stateless tokens, nothing to revoke server-side
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

type PredictionRequest struct {
	Location  string `json:"location"`
	Date      string `json:"date"`
	TimeOfDay string `json:"time_of_day"`
}

var predictionRequestSchema = z.Struct(z.Shape{
	"Location": z.String().Required(),
	"Date":     z.String().Required(),
	"TimeOfDay": z.String().OneOf([]string{
		string(models.TimeOfDayMorning),
		string(models.TimeOfDayAfternoon),
		string(models.TimeOfDayEvening),
		string(models.TimeOfDayNight),
	}).Required(),
})

func (rs *RestfulServer) PostPrediction(c *gin.Context) {
	claims := currentClaims(c)

	if !rs.CheckUserLimiter(claims.UserID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req PredictionRequest
	if err := predictionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	prediction, err := rs.Aqi.Prediction.Predict(c.Request.Context(), claims.UserID, &aqi.PredictionInput{
		Location:  req.Location,
		Date:      date,
		TimeOfDay: models.TimeOfDay(req.TimeOfDay),
	})
	if errors.Is(err, geocode.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save prediction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"prediction": prediction,
		"severity":   aqi.Classify(prediction.PredictedAQI),
		"suggestion": aqi.HealthSuggestion(prediction.PredictedAQI),
	})
}

func (rs *RestfulServer) GetPredictions(c *gin.Context) {
	claims := currentClaims(c)

	limit := aqi.ListLimitDefault
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	predictions, err := rs.Aqi.Prediction.ListPredictions(claims.UserID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load predictions"})
		return
	}

	c.JSON(http.StatusOK, predictions)
}

func (rs *RestfulServer) ExportPredictions(c *gin.Context) {
	claims := currentClaims(c)

	predictions, err := rs.Aqi.Prediction.ListPredictions(claims.UserID, aqi.ListLimitDefault)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load predictions"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="predictions.csv"`)
	if err := aqi.ExportCSV(c.Writer, predictions); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	claims := currentClaims(c)

	recent, err := rs.Aqi.Prediction.ListPredictions(claims.UserID, aqi.ChartLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load predictions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"station":    aqi.DefaultStation,
		"aqi":        aqi.CurrentAQIValue,
		"severity":   aqi.Classify(aqi.CurrentAQIValue),
		"meter":      aqi.MeterPercent(aqi.CurrentAQIValue),
		"weather":    aqi.CurrentConditions(),
		"trend":      aqi.HourlyTrend(),
		"recent":     recent,
		"suggestion": aqi.HealthSuggestion(aqi.CurrentAQIValue),
	})
}

func (rs *RestfulServer) GetAdvisories(c *gin.Context) {
	value := aqi.CurrentAQIValue
	if aqiStr := c.Query("aqi"); aqiStr != "" {
		parsed, err := strconv.Atoi(aqiStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "aqi must be an integer"})
			return
		}
		value = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"aqi":        value,
		"severity":   aqi.Classify(value),
		"suggestion": aqi.HealthSuggestion(value),
		"advisories": rs.Aqi.Advisory.AdvisoriesFor(value),
	})
}

func (rs *RestfulServer) GetAnalytics(c *gin.Context) {
	timeRange := c.DefaultQuery("range", "daily")

	var trend []aqi.TrendPoint
	switch timeRange {
	case "daily":
		trend = aqi.DailyTrend()
	case "weekly":
		trend = aqi.WeeklyTrend()
	case "monthly":
		trend = aqi.MonthlyTrend()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "range must be daily, weekly or monthly"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"range":  timeRange,
		"trend":  trend,
		"cities": aqi.CityComparison(),
	})
}

func (rs *RestfulServer) GetNotifications(c *gin.Context) {
	claims := currentClaims(c)

	c.JSON(http.StatusOK, gin.H{
		"notifications": rs.Aqi.Notification.ListNotifications(claims.UserID),
		"unread":        rs.Aqi.Notification.UnreadCount(claims.UserID),
	})
}

func (rs *RestfulServer) MarkNotificationsRead(c *gin.Context) {
	claims := currentClaims(c)

	rs.Aqi.Notification.MarkAllRead(claims.UserID)

	c.JSON(http.StatusOK, gin.H{
		"notifications": rs.Aqi.Notification.ListNotifications(claims.UserID),
		"unread":        rs.Aqi.Notification.UnreadCount(claims.UserID),
	})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	claims := currentClaims(c)

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(claims.UserID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
