package aqi

type Advisory struct {
	Icon        string       `json:"icon"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tier        SeverityTier `json:"tier"`
}

// Two cards for the clean-air tiers, three once protection is needed.
var advisoryTable = map[SeverityTier][]Advisory{
	TierGood: {
		{Icon: "footprints", Title: "Outdoor Activities",
			Description: "Perfect time for outdoor exercise and activities. Air quality is excellent."},
		{Icon: "shield-check", Title: "General Health",
			Description: "No health precautions needed. Enjoy your day!"},
	},
	TierModerate: {
		{Icon: "footprints", Title: "Outdoor Activities",
			Description: "Generally safe for most people. Sensitive individuals should consider limiting prolonged outdoor exertion."},
		{Icon: "shield-alert", Title: "Sensitive Groups",
			Description: "People with respiratory conditions should monitor symptoms and reduce outdoor activity if needed."},
	},
	TierUnhealthySensitive: {
		{Icon: "shield-alert", Title: "Wear Protection",
			Description: "Wear a mask (N95 or equivalent) when going outdoors, especially for extended periods."},
		{Icon: "footprints", Title: "Limit Outdoor Activity",
			Description: "Reduce prolonged or heavy outdoor exertion. Schedule outdoor activities when air quality improves."},
		{Icon: "home", Title: "Indoor Safety",
			Description: "Keep windows closed and use air purifiers if available. Create a clean air space at home."},
	},
	TierUnhealthy:     hazardousAdvisories,
	TierVeryUnhealthy: hazardousAdvisories,
	TierHazardous:     hazardousAdvisories,
}

var hazardousAdvisories = []Advisory{
	{Icon: "home", Title: "Stay Indoors",
		Description: "Avoid all outdoor activities. Keep windows and doors closed at all times."},
	{Icon: "shield-alert", Title: "Health Alert",
		Description: "Everyone should avoid outdoor exposure. People with heart or lung disease should stay alert for symptoms."},
	{Icon: "shield-alert", Title: "Use Air Purifiers",
		Description: "Run air purifiers continuously. Consider relocating to areas with better air quality if possible."},
}

// AdvisoriesFor returns the fixed advisory cards for the tier the value
// classifies into. The returned slice is a copy stamped with that tier.
func AdvisoriesFor(value int) []Advisory {
	tier := Classify(value).Tier
	table := advisoryTable[tier]
	advisories := make([]Advisory, len(table))
	for i, advisory := range table {
		advisory.Tier = tier
		advisories[i] = advisory
	}
	return advisories
}

type IAdvisoryImpl struct {
	aqi *AQI
}

func (ia *IAdvisoryImpl) AdvisoriesFor(value int) []Advisory {
	return AdvisoriesFor(value)
}

func (a *AQI) GetIAdvisory() IAdvisory {
	return &IAdvisoryImpl{aqi: a}
}
