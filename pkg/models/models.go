package models

import "time"

type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

func ValidTimeOfDay(v string) bool {
	switch TimeOfDay(v) {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Predictions []Prediction `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

type Prediction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	Location       string    `json:"location"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	PredictedAQI   int       `json:"predicted_aqi"`
	PredictionDate time.Time `json:"prediction_date"`
	PredictionTime TimeOfDay `gorm:"type:varchar(20);check:prediction_time IN ('morning','afternoon','evening','night')" json:"prediction_time"`
	CreatedAt      time.Time `json:"created_at"`
}

type NotificationType string

const (
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
)

// Notification lives only in the per-session inbox, never in the database.
type Notification struct {
	ID       string           `json:"id"`
	Type     NotificationType `json:"type"`
	Message  string           `json:"message"`
	Time     time.Time        `json:"time"`
	Location string           `json:"location,omitempty"`
	Read     bool             `json:"read"`
}
