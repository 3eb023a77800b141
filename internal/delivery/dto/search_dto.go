package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// SearchProfessionalsRequest is the parsed search query. Lat and Lng are
// pointers because partial or unusable location data is not an error: the
// search degrades to the non-geo path instead.
type SearchProfessionalsRequest struct {
	Specialty     string   `json:"specialty" validate:"omitempty,max=100"`
	City          string   `json:"city" validate:"omitempty,max=100"`
	MinExperience *int     `json:"min_experience"`
	Lat           *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng           *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	RadiusKm      *float64 `json:"radius"`
	SortBy        string   `json:"sort_by"`
	Page          int      `json:"page"`
	Limit         int      `json:"limit"`
}

// HasCoordinates reports whether the request carries a usable search
// location.
func (r *SearchProfessionalsRequest) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}

// Response DTOs

type ProfessionalResult struct {
	ID               uuid.UUID       `json:"id"`
	Role             string          `json:"role"`
	FullName         string          `json:"full_name"`
	Specialty        string          `json:"specialty"`
	City             string          `json:"city,omitempty"`
	SubscriptionTier string          `json:"subscription_tier"`
	AverageRating    float64         `json:"average_rating"`
	ReviewCount      int             `json:"review_count"`
	ExperienceYears  int             `json:"experience_years"`
	ConsultationFee  decimal.Decimal `json:"consultation_fee"`
	CreatedAt        time.Time       `json:"created_at"`

	// Set only when the search carried coordinates.
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Coverage   string   `json:"coverage,omitempty"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	Limit       int  `json:"limit"`
}

type SearchProfessionalsResponse struct {
	Professionals []ProfessionalResult `json:"professionals"`
	Pagination    Pagination           `json:"pagination"`
}
