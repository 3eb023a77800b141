package matching

import (
	"context"

	"github.com/docspot/docspot-api/internal/domain/entity"
)

// CoverageKind records how a candidate ended up reachable from the search
// location.
type CoverageKind string

const (
	CoverageOwnArea      CoverageKind = "own-area"
	CoverageCityFallback CoverageKind = "city-fallback"
	CoverageNone         CoverageKind = "none"
)

// RankedCandidate is a professional annotated by the coverage and ranking
// stages. DistanceKm is nil on searches without coordinates.
type RankedCandidate struct {
	Professional entity.Professional
	DistanceKm   *float64
	Coverage     CoverageKind
}

// ctxCheckInterval bounds how often the classify loop polls for
// cancellation. The loop is pure CPU between checks.
const ctxCheckInterval = 1024

// CoverageIndex decides which candidates are reachable from a search
// location and annotates the survivors with a distance.
type CoverageIndex struct {
	cities Gazetteer
}

func NewCoverageIndex(cities Gazetteer) *CoverageIndex {
	return &CoverageIndex{cities: cities}
}

// Classify partitions candidates against a coverage decagon built from the
// search center and radius.
//
// A candidate with a drawn service area is included when the area's centroid
// falls inside the decagon. Only the centroid is tested, not the full ring,
// so a wide area whose centroid sits just outside a small radius is missed
// and a thin far-reaching one whose centroid lands inside is kept. The
// annotated distance may exceed the nominal radius; the polygon test is
// authoritative, not the distance.
//
// A candidate without a service area falls back to its declared city's
// coordinate and must be within radiusKm. Unknown cities are excluded.
//
// Note the asymmetry for radiusKm <= 0: the city-fallback distance filter
// excludes everything, but the own-area polygon test still runs against the
// degenerate decagon.
func (ci *CoverageIndex) Classify(ctx context.Context, center entity.GeoPoint, radiusKm float64, candidates []entity.Professional) ([]RankedCandidate, error) {
	coverage := BuildCoveragePolygon(center, radiusKm)

	out := make([]RankedCandidate, 0, len(candidates))
	for i, p := range candidates {
		if (i+1)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if len(p.ServiceArea) > 0 {
			centroid, ok := RingCentroid(p.ServiceArea)
			if !ok || !ContainsPoint(coverage, centroid) {
				continue
			}
			d := HaversineKm(center, centroid)
			out = append(out, RankedCandidate{Professional: p, DistanceKm: &d, Coverage: CoverageOwnArea})
			continue
		}

		cityPoint, ok := ci.cities.Lookup(p.City)
		if !ok {
			continue
		}
		d := HaversineKm(center, cityPoint)
		if d > radiusKm {
			continue
		}
		out = append(out, RankedCandidate{Professional: p, DistanceKm: &d, Coverage: CoverageCityFallback})
	}
	return out, nil
}
