package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/disaster_portal/internal/models"
)

func TestToggleFilter(t *testing.T) {
	tests := []struct {
		name   string
		active []string
		filter string
		want   []string
	}{
		{name: "all сбрасывает выбор", active: []string{"flood", "fire"}, filter: "all", want: []string{"all"}},
		{name: "добавление убирает all", active: []string{"all"}, filter: "flood", want: []string{"flood"}},
		{name: "добавление к выбранным", active: []string{"flood"}, filter: "fire", want: []string{"flood", "fire"}},
		{name: "повторный выбор снимает фильтр", active: []string{"flood", "fire"}, filter: "flood", want: []string{"fire"}},
		{name: "пустой результат становится all", active: []string{"flood"}, filter: "flood", want: []string{"all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToggleFilter(tt.active, tt.filter))
		})
	}
}

func TestNormalizeFilters(t *testing.T) {
	assert.Equal(t, []string{"all"}, NormalizeFilters(nil))
	assert.Equal(t, []string{"all"}, NormalizeFilters([]string{"volcano"}))
	assert.Equal(t, []string{"flood"}, NormalizeFilters([]string{"flood", "flood"}))
	assert.Equal(t, []string{"all"}, NormalizeFilters([]string{"flood", "all"}))
}

func TestLiveMap_FiltersDisasters(t *testing.T) {
	page := LiveMap([]string{"flood"})

	require.Len(t, page.Disasters, 2)
	for _, d := range page.Disasters {
		assert.Equal(t, "flood", d.Type)
	}
	assert.Equal(t, []string{"flood"}, page.ActiveFilters)
	assert.Equal(t, MapFilters(), page.Filters)

	all := LiveMap(nil)
	assert.Len(t, all.Disasters, 5)
	assert.Equal(t, "Partly Cloudy", all.Weather.Condition)
}

func TestNearCapacity(t *testing.T) {
	shelters := []models.Shelter{
		{Name: "full", Capacity: 100, Current: 81},
		{Name: "edge", Capacity: 100, Current: 80},
		{Name: "empty", Capacity: 0, Current: 0},
	}

	got := NearCapacity(shelters)

	require.Len(t, got, 1)
	assert.Equal(t, "full", got[0].Name)
	assert.Empty(t, NearCapacity(Shelters()))
}

func TestDisastersGeoJSON(t *testing.T) {
	fc := DisastersGeoJSON(Disasters()[:1])

	data, err := json.Marshal(fc)
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "FeatureCollection", decoded.Type)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, []float64{80.4031, 6.6828}, decoded.Features[0].Geometry.Coordinates)
	assert.Equal(t, "Ratnapura", decoded.Features[0].Properties["location"])
	assert.Equal(t, "high", decoded.Features[0].Properties["severity"])
}

func TestEmergencyContacts_Dial(t *testing.T) {
	contacts := EmergencyContacts()

	require.Len(t, contacts, 6)
	assert.Equal(t, "tel:119", contacts[0].Dial)
	assert.Equal(t, "tel:0112691111", contacts[4].Dial)
}

func TestPredictions(t *testing.T) {
	page := Predictions()

	assert.Len(t, page.FloodForecast, 7)
	assert.Len(t, page.LandslideRiskAreas, 5)
	assert.Len(t, page.Insights, 3)
	assert.Equal(t, 92, page.Insights[0].Confidence)
}
