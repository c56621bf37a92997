package aqi

// Mock readings backing the dashboard and analytics views. A real pollutant
// feed is out of scope; the station and numbers match the seeded demo data.

const (
	DefaultStation  = "Chennai, Tamil Nadu"
	CurrentAQIValue = 87
)

type WeatherReading struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

func CurrentConditions() []WeatherReading {
	return []WeatherReading{
		{Icon: "cloud-rain", Label: "Temperature", Value: "28", Unit: "°C"},
		{Icon: "droplets", Label: "Humidity", Value: "65", Unit: "%"},
		{Icon: "wind", Label: "Wind Speed", Value: "12", Unit: "km/h"},
		{Icon: "cloud-rain", Label: "Pressure", Value: "1013", Unit: "hPa"},
	}
}

type TrendPoint struct {
	Label string `json:"label"`
	AQI   int    `json:"aqi"`
	Temp  int    `json:"temp,omitempty"`
}

func HourlyTrend() []TrendPoint {
	return []TrendPoint{
		{Label: "00:00", AQI: 65},
		{Label: "04:00", AQI: 58},
		{Label: "08:00", AQI: 72},
		{Label: "12:00", AQI: 95},
		{Label: "16:00", AQI: 102},
		{Label: "20:00", AQI: 87},
	}
}

func DailyTrend() []TrendPoint {
	return []TrendPoint{
		{Label: "Mon", AQI: 65, Temp: 28},
		{Label: "Tue", AQI: 58, Temp: 29},
		{Label: "Wed", AQI: 72, Temp: 27},
		{Label: "Thu", AQI: 95, Temp: 30},
		{Label: "Fri", AQI: 102, Temp: 31},
		{Label: "Sat", AQI: 87, Temp: 29},
		{Label: "Sun", AQI: 78, Temp: 28},
	}
}

func WeeklyTrend() []TrendPoint {
	return []TrendPoint{
		{Label: "Week 1", AQI: 75},
		{Label: "Week 2", AQI: 82},
		{Label: "Week 3", AQI: 68},
		{Label: "Week 4", AQI: 91},
	}
}

func MonthlyTrend() []TrendPoint {
	return []TrendPoint{
		{Label: "Jan", AQI: 85},
		{Label: "Feb", AQI: 78},
		{Label: "Mar", AQI: 92},
		{Label: "Apr", AQI: 105},
		{Label: "May", AQI: 98},
		{Label: "Jun", AQI: 88},
	}
}

func CityComparison() []TrendPoint {
	return []TrendPoint{
		{Label: "Chennai", AQI: 87},
		{Label: "Mumbai", AQI: 102},
		{Label: "Delhi", AQI: 156},
		{Label: "Bangalore", AQI: 65},
		{Label: "Kolkata", AQI: 118},
	}
}
