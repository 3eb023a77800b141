package repository

import (
	"context"

	"github.com/docspot/docspot-api/internal/domain/entity"
	domainRepo "github.com/docspot/docspot-api/internal/domain/repository"

	"gorm.io/gorm"
)

type professionalRepository struct {
	db *gorm.DB
}

func NewProfessionalRepository(db *gorm.DB) domainRepo.ProfessionalRepository {
	return &professionalRepository{db: db}
}

func (r *professionalRepository) FindProfessionals(ctx context.Context, filter *entity.ProfessionalFilter) ([]entity.Professional, error) {
	query := r.db.WithContext(ctx).Model(&entity.Professional{}).Where("role = ?", filter.Role)

	if filter.VerifiedOnly {
		query = query.Where("is_verified = ?", true)
	}
	if filter.Specialty != "" {
		query = query.Where("specialty ILIKE ?", "%"+filter.Specialty+"%")
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.MinExperience != nil {
		query = query.Where("experience_years >= ?", *filter.MinExperience)
	}

	var professionals []entity.Professional
	if err := query.Find(&professionals).Error; err != nil {
		return nil, err
	}
	return professionals, nil
}
