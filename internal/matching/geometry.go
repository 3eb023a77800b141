package matching

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/docspot/docspot-api/internal/domain/entity"
)

const (
	earthRadiusKm = 6371.0

	// kmPerDegree is the flat-Earth conversion used when turning a search
	// radius into degrees. It ignores latitude distortion, so the coverage
	// shape drifts for large radii; results are only dependable up to
	// roughly 50 km.
	kmPerDegree = 111.0

	coverageVertices = 10
)

// HaversineKm returns the great-circle distance between two points in
// kilometers. Symmetric, and zero for identical points.
func HaversineKm(a, b entity.GeoPoint) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180.0)*math.Cos(b.Lat*math.Pi/180.0)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// RingCentroid returns the arithmetic mean of the ring's vertices, skipping
// the closing vertex when it repeats the first. This is a plain vertex
// average, not an area-weighted centroid; the write path builds rings the
// same way, so both sides of the comparison stay consistent.
func RingCentroid(ring entity.ServiceAreaRing) (entity.GeoPoint, bool) {
	vertices := ring
	if len(vertices) > 1 && vertices[0] == vertices[len(vertices)-1] {
		vertices = vertices[:len(vertices)-1]
	}
	if len(vertices) == 0 {
		return entity.GeoPoint{}, false
	}

	var sumLng, sumLat float64
	for _, v := range vertices {
		sumLng += v.Lng
		sumLat += v.Lat
	}
	n := float64(len(vertices))
	return entity.GeoPoint{Lng: sumLng / n, Lat: sumLat / n}, true
}

// BuildCoveragePolygon approximates a circle of radiusKm around center with
// a regular decagon: ten vertices at 36 degree steps, offset by
// radiusKm/111 degrees, closed by repeating the first vertex.
func BuildCoveragePolygon(center entity.GeoPoint, radiusKm float64) orb.Ring {
	radiusDeg := radiusKm / kmPerDegree
	ring := make(orb.Ring, 0, coverageVertices+1)
	for i := 0; i < coverageVertices; i++ {
		angle := 2 * math.Pi * float64(i) / coverageVertices
		ring = append(ring, orb.Point{
			center.Lng + radiusDeg*math.Cos(angle),
			center.Lat + radiusDeg*math.Sin(angle),
		})
	}
	ring = append(ring, ring[0])
	return ring
}

// ContainsPoint reports whether p falls inside ring (even-odd ray casting).
func ContainsPoint(ring orb.Ring, p entity.GeoPoint) bool {
	return planar.RingContains(ring, orb.Point{p.Lng, p.Lat}) // orb.Point is [lng, lat]
}
