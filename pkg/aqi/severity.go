package aqi

const (
	MinAQI = 0
	MaxAQI = 500
)

type SeverityTier string

const (
	TierGood               SeverityTier = "good"
	TierModerate           SeverityTier = "moderate"
	TierUnhealthySensitive SeverityTier = "unhealthySensitive"
	TierUnhealthy          SeverityTier = "unhealthy"
	TierVeryUnhealthy      SeverityTier = "veryUnhealthy"
	TierHazardous          SeverityTier = "hazardous"
)

type Severity struct {
	Tier       SeverityTier `json:"tier"`
	Label      string       `json:"label"`
	ColorToken string       `json:"color"`
}

type severityBand struct {
	upper      int // inclusive upper bound, ignored for the last band
	tier       SeverityTier
	label      string
	suggestion string
}

// The single source of truth for AQI banding. The meter color, the advisory
// list and the health suggestion all go through this table.
var severityBands = []severityBand{
	{50, TierGood, "Good", "Safe to go outside - air quality is excellent!"},
	{100, TierModerate, "Moderate", "Generally safe - sensitive individuals should limit prolonged outdoor activity."},
	{150, TierUnhealthySensitive, "Unhealthy for Sensitive", "Wear a mask if outdoors - air quality is unhealthy for sensitive groups."},
	{200, TierUnhealthy, "Unhealthy", "Limit outdoor activity - everyone may experience health effects."},
	{300, TierVeryUnhealthy, "Very Unhealthy", "Avoid outdoor activity - health alert for everyone."},
	{0, TierHazardous, "Hazardous", "Stay indoors - emergency health warning, avoid all outdoor activity."},
}

func classifyBand(value int) severityBand {
	for _, band := range severityBands[:len(severityBands)-1] {
		if value <= band.upper {
			return band
		}
	}
	return severityBands[len(severityBands)-1]
}

// Classify is total over all integers: anything at or below 50, negatives
// included, is good; anything above 300 is hazardous.
func Classify(value int) Severity {
	band := classifyBand(value)
	return Severity{
		Tier:       band.tier,
		Label:      band.label,
		ColorToken: "aqi-" + string(band.tier),
	}
}

func HealthSuggestion(value int) string {
	return classifyBand(value).suggestion
}

func Clamp(value int) int {
	if value < MinAQI {
		return MinAQI
	}
	if value > MaxAQI {
		return MaxAQI
	}
	return value
}

// MeterPercent is the display fill of the circular meter. Clamping applies
// here only, never to classification.
func MeterPercent(value int) float64 {
	return float64(Clamp(value)) / float64(MaxAQI) * 100
}
