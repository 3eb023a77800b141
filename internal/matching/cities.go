package matching

import (
	"strings"

	"github.com/docspot/docspot-api/internal/domain/entity"
)

// Gazetteer maps lowercase city names to an approximate center coordinate.
// It is the fallback location source for professionals who never drew a
// service area. The table is injected into the coverage index at
// construction so tests can supply synthetic cities.
type Gazetteer map[string]entity.GeoPoint

// Lookup resolves a declared city to its coordinate. Matching is
// case-insensitive; unknown cities report false.
func (g Gazetteer) Lookup(city string) (entity.GeoPoint, bool) {
	p, ok := g[strings.ToLower(strings.TrimSpace(city))]
	return p, ok
}

// DefaultGazetteer covers the metros the platform operates in.
func DefaultGazetteer() Gazetteer {
	return Gazetteer{
		"mumbai":    {Lng: 72.8777, Lat: 19.0760},
		"delhi":     {Lng: 77.1025, Lat: 28.7041},
		"new delhi": {Lng: 77.2090, Lat: 28.6139},
		"bengaluru": {Lng: 77.5946, Lat: 12.9716},
		"bangalore": {Lng: 77.5946, Lat: 12.9716},
		"hyderabad": {Lng: 78.4867, Lat: 17.3850},
		"chennai":   {Lng: 80.2707, Lat: 13.0827},
		"kolkata":   {Lng: 88.3639, Lat: 22.5726},
		"pune":      {Lng: 73.8567, Lat: 18.5204},
		"ahmedabad": {Lng: 72.5714, Lat: 23.0225},
		"jaipur":    {Lng: 75.7873, Lat: 26.9124},
		"surat":     {Lng: 72.8311, Lat: 21.1702},
		"lucknow":   {Lng: 80.9462, Lat: 26.8467},
		"nagpur":    {Lng: 79.0882, Lat: 21.1458},
		"indore":    {Lng: 75.8577, Lat: 22.7196},
		"kochi":     {Lng: 76.2673, Lat: 9.9312},
	}
}
