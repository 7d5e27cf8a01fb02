// Package catalog содержит статические данные страниц портала:
// карта, прогнозы, ресурсы, панель администратора и экстренные контакты.
package catalog

import (
	"strings"

	"github.com/shenikar/disaster_portal/internal/models"
)

// LandingPage - данные главной страницы
type LandingPage struct {
	DisasterTypes []models.DisasterTypeCard `json:"disaster_types"`
	Features      []models.Feature          `json:"features"`
	Stats         []models.StatCard         `json:"stats"`
	RecentAlerts  []models.Alert            `json:"recent_alerts"`
}

// MapPage - данные страницы живой карты
type MapPage struct {
	Filters       []string          `json:"filters"`
	ActiveFilters []string          `json:"active_filters"`
	Disasters     []models.Disaster `json:"disasters"`
	Weather       models.Weather    `json:"weather"`
	Shelters      []models.Shelter  `json:"shelters"`
}

// PredictionsPage - данные страницы прогнозов
type PredictionsPage struct {
	FloodForecast        []models.FloodForecastDay    `json:"flood_forecast"`
	LandslideRiskAreas   []models.RiskArea            `json:"landslide_risk_areas"`
	Insights             []models.Insight             `json:"insights"`
	EnvironmentalFactors []models.EnvironmentalFactor `json:"environmental_factors"`
	Summary              string                       `json:"summary"`
}

// ResourcesPage - данные страницы ресурсов
type ResourcesPage struct {
	Stats     []models.StatCard `json:"stats"`
	Resources []models.Resource `json:"resources"`
	Teams     []models.Team     `json:"teams"`
}

// DashboardPage - данные панели администратора
type DashboardPage struct {
	Stats         []models.StatCard      `json:"stats"`
	Activity      []models.ActivityPoint `json:"activity"`
	RecentReports []models.RecentReport  `json:"recent_reports"`
}

func Landing() LandingPage {
	return LandingPage{
		DisasterTypes: []models.DisasterTypeCard{
			{Label: "Floods", Color: "bg-blue-500"},
			{Label: "Landslides", Color: "bg-amber-600"},
			{Label: "Tsunami", Color: "bg-cyan-500"},
			{Label: "Fire", Color: "bg-orange"},
		},
		Features: []models.Feature{
			{Title: "Real-Time Tracking", Description: "Monitor disasters across Sri Lanka with live GPS-based mapping and instant alerts.", Color: "primary"},
			{Title: "AI Predictions", Description: "Advanced machine learning models predict floods, landslides, and weather patterns.", Color: "gold"},
			{Title: "Citizen Reports", Description: "Enable citizens to report incidents with photos, GPS location, and descriptions.", Color: "green"},
			{Title: "Resource Management", Description: "Coordinate shelters, medical aid, food supplies, and rescue teams efficiently.", Color: "orange"},
		},
		Stats: []models.StatCard{
			{Title: "Active Alerts", Value: "23", Subtitle: "Across 8 districts", Color: "orange"},
			{Title: "Citizens Reporting", Value: "12.5K", Subtitle: "Monthly active users", Color: "green", Trend: &models.Trend{Value: 12, IsPositive: true}},
			{Title: "Resources Deployed", Value: "156", Subtitle: "Teams & vehicles", Color: "primary"},
			{Title: "Response Time", Value: "18 min", Subtitle: "Average time", Color: "gold", Trend: &models.Trend{Value: 8, IsPositive: true}},
		},
		RecentAlerts: []models.Alert{
			{Type: "Flood Warning", Location: "Ratnapura District", Severity: "high", Time: "2 hours ago"},
			{Type: "Landslide Risk", Location: "Nuwara Eliya", Severity: "medium", Time: "5 hours ago"},
			{Type: "Heavy Rainfall", Location: "Western Province", Severity: "low", Time: "8 hours ago"},
		},
	}
}

// Disasters возвращает все активные события карты
func Disasters() []models.Disaster {
	return []models.Disaster{
		{ID: 1, Type: "flood", Severity: "high", Location: "Ratnapura", Latitude: 6.6828, Longitude: 80.4031, Reports: 45},
		{ID: 2, Type: "landslide", Severity: "medium", Location: "Nuwara Eliya", Latitude: 6.9497, Longitude: 80.7891, Reports: 12},
		{ID: 3, Type: "fire", Severity: "low", Location: "Colombo", Latitude: 6.9271, Longitude: 79.8612, Reports: 5},
		{ID: 4, Type: "flood", Severity: "medium", Location: "Galle", Latitude: 6.0535, Longitude: 80.2210, Reports: 23},
		{ID: 5, Type: "cyclone", Severity: "high", Location: "Jaffna", Latitude: 9.6615, Longitude: 80.0255, Reports: 67},
	}
}

func Shelters() []models.Shelter {
	return []models.Shelter{
		{ID: 1, Name: "Central School Shelter", Capacity: 200, Current: 45, Location: "Colombo"},
		{ID: 2, Name: "Town Hall Complex", Capacity: 150, Current: 89, Location: "Ratnapura"},
		{ID: 3, Name: "Community Center", Capacity: 100, Current: 23, Location: "Galle"},
	}
}

// LiveMap возвращает карту с учетом активных фильтров
func LiveMap(active []string) MapPage {
	active = NormalizeFilters(active)
	return MapPage{
		Filters:       MapFilters(),
		ActiveFilters: active,
		Disasters:     FilterDisasters(Disasters(), active),
		Weather: models.Weather{
			TemperatureC: 28,
			HumidityPct:  78,
			WindSpeedKmh: 15,
			RainfallMm:   12.5,
			Condition:    "Partly Cloudy",
		},
		Shelters: Shelters(),
	}
}

func Predictions() PredictionsPage {
	return PredictionsPage{
		FloodForecast: []models.FloodForecastDay{
			{Day: "Mon", Risk: 25, RainfallMm: 45},
			{Day: "Tue", Risk: 35, RainfallMm: 78},
			{Day: "Wed", Risk: 55, RainfallMm: 95},
			{Day: "Thu", Risk: 75, RainfallMm: 120},
			{Day: "Fri", Risk: 65, RainfallMm: 85},
			{Day: "Sat", Risk: 45, RainfallMm: 55},
			{Day: "Sun", Risk: 30, RainfallMm: 35},
		},
		LandslideRiskAreas: []models.RiskArea{
			{Area: "Nuwara Eliya", Risk: 85, Trend: "increasing"},
			{Area: "Ratnapura", Risk: 72, Trend: "stable"},
			{Area: "Badulla", Risk: 68, Trend: "increasing"},
			{Area: "Kandy", Risk: 45, Trend: "decreasing"},
			{Area: "Kegalle", Risk: 58, Trend: "stable"},
		},
		Insights: []models.Insight{
			{
				Type:        "warning",
				Title:       "High Flood Risk Alert",
				Description: "Based on current rainfall patterns and soil saturation levels, there is a 75% probability of flooding in Ratnapura district within the next 48 hours.",
				Confidence:  92,
			},
			{
				Type:        "info",
				Title:       "Landslide Probability Increasing",
				Description: "Continuous rainfall in the hill country has increased landslide risk. Nuwara Eliya and Badulla districts are most vulnerable.",
				Confidence:  88,
			},
			{
				Type:        "success",
				Title:       "Improving Conditions",
				Description: "Weather models predict a gradual decrease in rainfall from Saturday, reducing flood risk in the Western Province.",
				Confidence:  85,
			},
		},
		EnvironmentalFactors: []models.EnvironmentalFactor{
			{Name: "Temperature", Value: "28°C"},
			{Name: "Humidity", Value: "82%"},
			{Name: "Wind Speed", Value: "18 km/h"},
			{Name: "Rainfall Today", Value: "45 mm"},
		},
		Summary: "Our LSTM-based prediction models have analyzed the current weather patterns, historical disaster data, and environmental factors. " +
			"The southwestern monsoon is bringing heavy rainfall to the Western and Southern provinces, increasing flood risk. " +
			"Hill country districts are experiencing soil saturation levels above normal thresholds, elevating landslide probability. " +
			"We recommend precautionary measures in high-risk areas.",
	}
}

func Resources() ResourcesPage {
	return ResourcesPage{
		Stats: []models.StatCard{
			{Title: "Total Shelters", Value: "42", Subtitle: "Active across 15 districts", Color: "green"},
			{Title: "Rescue Teams", Value: "28", Subtitle: "156 personnel deployed", Color: "primary"},
			{Title: "Vehicles", Value: "85", Subtitle: "On standby", Color: "gold"},
			{Title: "Supply Centers", Value: "12", Subtitle: "Fully stocked", Color: "orange"},
		},
		Resources: []models.Resource{
			{ID: 1, Type: "Food Supplies", Available: 2500, Unit: "packages", Location: "Colombo Warehouse", Status: "available"},
			{ID: 2, Type: "Medical Kits", Available: 450, Unit: "kits", Location: "Central Hospital", Status: "low"},
			{ID: 3, Type: "Tents", Available: 180, Unit: "units", Location: "Ratnapura Camp", Status: "available"},
			{ID: 4, Type: "Water Bottles", Available: 5000, Unit: "liters", Location: "Multiple Locations", Status: "available"},
		},
		Teams: []models.Team{
			{Name: "Rescue Team Alpha", Members: 12, Status: "deployed", Location: "Ratnapura"},
			{Name: "Medical Unit 3", Members: 8, Status: "standby", Location: "Colombo"},
			{Name: "Search & Rescue B", Members: 15, Status: "deployed", Location: "Nuwara Eliya"},
		},
	}
}

// Dashboard возвращает статическую панель администратора.
// Сервис дополняет ее сохраненными сообщениями.
func Dashboard() DashboardPage {
	return DashboardPage{
		Stats: []models.StatCard{
			{Title: "Active Alerts", Value: "23", Color: "orange", Trend: &models.Trend{Value: 15, IsPositive: false}},
			{Title: "Reports Today", Value: "156", Color: "primary", Trend: &models.Trend{Value: 8, IsPositive: true}},
			{Title: "Active Users", Value: "2.4K", Color: "green"},
			{Title: "Avg Response", Value: "18 min", Color: "gold", Trend: &models.Trend{Value: 12, IsPositive: true}},
		},
		Activity: []models.ActivityPoint{
			{Time: "00:00", Reports: 12},
			{Time: "04:00", Reports: 8},
			{Time: "08:00", Reports: 25},
			{Time: "12:00", Reports: 45},
			{Time: "16:00", Reports: 38},
			{Time: "20:00", Reports: 22},
		},
		RecentReports: []models.RecentReport{
			{ID: "1", Type: "Flood", Location: "Ratnapura", Time: "10 min ago", Status: "verified"},
			{ID: "2", Type: "Landslide", Location: "Nuwara Eliya", Time: "25 min ago", Status: "pending"},
			{ID: "3", Type: "Road Block", Location: "Kandy", Time: "1 hour ago", Status: "resolved"},
		},
	}
}

func EmergencyContacts() []models.EmergencyContact {
	contacts := []models.EmergencyContact{
		{Name: "Police Emergency", Number: "119"},
		{Name: "Ambulance / Suwa Seriya", Number: "1990"},
		{Name: "Fire & Rescue", Number: "111"},
		{Name: "Disaster Management Center", Number: "117"},
		{Name: "National Hospital Colombo", Number: "011-2691111"},
		{Name: "Meteorology Department", Number: "011-2694104"},
	}
	for i := range contacts {
		contacts[i].Dial = "tel:" + strings.ReplaceAll(contacts[i].Number, "-", "")
	}
	return contacts
}
