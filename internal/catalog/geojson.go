package catalog

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/shenikar/disaster_portal/internal/models"
)

// DisastersGeoJSON собирает события карты в FeatureCollection.
// Координаты в GeoJSON идут в порядке долгота, широта.
func DisastersGeoJSON(disasters []models.Disaster) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, d := range disasters {
		f := geojson.NewFeature(orb.Point{d.Longitude, d.Latitude})
		f.ID = d.ID
		f.Properties["type"] = d.Type
		f.Properties["severity"] = d.Severity
		f.Properties["location"] = d.Location
		f.Properties["reports"] = d.Reports
		fc.Append(f)
	}
	return fc
}
