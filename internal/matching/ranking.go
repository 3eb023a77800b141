package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/docspot/docspot-api/internal/domain/entity"
)

// SortKey selects the secondary ordering applied after subscription tier.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByExperience SortKey = "experience"
	SortByRating     SortKey = "rating"
	SortByNewest     SortKey = "newest"
	SortByDistance   SortKey = "distance"
)

// ParseSortKey maps a raw query value to a sort key. Anything unrecognized
// orders by name.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(raw))); key {
	case SortByExperience, SortByRating, SortByNewest, SortByDistance:
		return key
	default:
		return SortByName
	}
}

// Rank orders candidates in place: subscription tier first (pro ahead of
// everything else), then the requested key, then the path's tie-break
// channel.
//
// The tie-break runs as a stable pre-pass rather than a third comparator
// leg. Geo searches pre-order by distance; non-geo searches pre-order by
// rating. Applying rating only as a pre-pass on the non-geo path keeps geo
// results ordered purely by tier, key and distance — a later rating pass
// must never disturb distance ordering there. Collapsing the two passes
// into one comparator would change observable result order.
func Rank(candidates []RankedCandidate, key SortKey, geo bool) {
	if geo {
		sort.SliceStable(candidates, func(i, j int) bool {
			return distanceOf(candidates[i]) < distanceOf(candidates[j])
		})
	} else if key != SortByRating {
		sort.SliceStable(candidates, func(i, j int) bool {
			return ratingOf(candidates[i].Professional) > ratingOf(candidates[j].Professional)
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if pa, pb := isPro(a.Professional), isPro(b.Professional); pa != pb {
			return pa
		}
		return keyLess(a, b, key)
	})
}

func keyLess(a, b RankedCandidate, key SortKey) bool {
	switch key {
	case SortByExperience:
		return a.Professional.ExperienceYears > b.Professional.ExperienceYears
	case SortByRating:
		return ratingOf(a.Professional) > ratingOf(b.Professional)
	case SortByNewest:
		return a.Professional.CreatedAt.After(b.Professional.CreatedAt)
	case SortByDistance:
		return distanceOf(a) < distanceOf(b)
	default:
		return a.Professional.FullName < b.Professional.FullName
	}
}

func isPro(p entity.Professional) bool {
	return p.SubscriptionTier == entity.TierPro
}

// ratingOf treats missing or non-finite ratings as zero so a bad record can
// never crash or dominate the ordering.
func ratingOf(p entity.Professional) float64 {
	if p.AverageRating == nil {
		return 0
	}
	r := *p.AverageRating
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// distanceOf is a no-op tie (constant zero) when no geo search annotated the
// candidate.
func distanceOf(c RankedCandidate) float64 {
	if c.DistanceKm == nil {
		return 0
	}
	return *c.DistanceKm
}
