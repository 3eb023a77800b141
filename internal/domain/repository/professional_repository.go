package repository

import (
	"context"

	"github.com/docspot/docspot-api/internal/domain/entity"
)

// ProfessionalRepository is the profile store boundary for the search path.
// No ordering is expected from the store; the matching pipeline re-sorts.
type ProfessionalRepository interface {
	FindProfessionals(ctx context.Context, filter *entity.ProfessionalFilter) ([]entity.Professional, error)
}
