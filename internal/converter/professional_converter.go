package converter

import (
	"math"

	"github.com/docspot/docspot-api/internal/delivery/dto"
	"github.com/docspot/docspot-api/internal/matching"
)

// RankedCandidateToResult converts a ranked candidate to its response DTO.
// Distance and coverage annotations are carried only for geo searches.
func RankedCandidateToResult(c *matching.RankedCandidate, geo bool) dto.ProfessionalResult {
	p := c.Professional

	rating := 0.0
	if p.AverageRating != nil && !math.IsNaN(*p.AverageRating) && !math.IsInf(*p.AverageRating, 0) {
		rating = *p.AverageRating
	}

	result := dto.ProfessionalResult{
		ID:               p.ID,
		Role:             p.Role,
		FullName:         p.FullName,
		Specialty:        p.Specialty,
		City:             p.City,
		SubscriptionTier: p.SubscriptionTier,
		AverageRating:    rating,
		ReviewCount:      p.ReviewCount,
		ExperienceYears:  p.ExperienceYears,
		ConsultationFee:  p.ConsultationFee,
		CreatedAt:        p.CreatedAt,
	}

	if geo {
		result.DistanceKm = c.DistanceKm
		result.Coverage = string(c.Coverage)
	}

	return result
}

// RankedCandidatesToResults converts a page of ranked candidates to response
// DTOs.
func RankedCandidatesToResults(candidates []matching.RankedCandidate, geo bool) []dto.ProfessionalResult {
	results := make([]dto.ProfessionalResult, len(candidates))
	for i := range candidates {
		results[i] = RankedCandidateToResult(&candidates[i], geo)
	}
	return results
}
