package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/docspot/docspot-api/config"
	"github.com/docspot/docspot-api/internal/converter"
	"github.com/docspot/docspot-api/internal/delivery/dto"
	"github.com/docspot/docspot-api/internal/domain/entity"
	"github.com/docspot/docspot-api/internal/domain/repository"
	"github.com/docspot/docspot-api/internal/matching"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSearchParameter  = errors.New("invalid search parameter")
	ErrProfileStoreUnavailable = errors.New("profile store unavailable")
)

type SearchUsecase interface {
	Search(ctx context.Context, role string, req *dto.SearchProfessionalsRequest) (*dto.SearchProfessionalsResponse, error)
}

// SearchCache is an optional result cache consulted before the profile
// store. Implementations must be best effort; a nil cache disables caching.
type SearchCache interface {
	Get(ctx context.Context, key string) (*dto.SearchProfessionalsResponse, bool)
	Set(ctx context.Context, key string, res *dto.SearchProfessionalsResponse)
}

type searchUsecase struct {
	log      *logrus.Logger
	cfg      config.SearchConfig
	repo     repository.ProfessionalRepository
	coverage *matching.CoverageIndex
	cache    SearchCache
}

func NewSearchUsecase(
	log *logrus.Logger,
	cfg config.SearchConfig,
	repo repository.ProfessionalRepository,
	coverage *matching.CoverageIndex,
	cache SearchCache,
) SearchUsecase {
	return &searchUsecase{
		log:      log,
		cfg:      cfg,
		repo:     repo,
		coverage: coverage,
		cache:    cache,
	}
}

// Search runs the full pipeline: load verified professionals matching the
// text filters, geo-filter and annotate them when the request carries
// coordinates, rank, and slice the requested page. Requests without usable
// coordinates take the non-geo path; that is a degrade, not an error.
func (u *searchUsecase) Search(ctx context.Context, role string, req *dto.SearchProfessionalsRequest) (*dto.SearchProfessionalsResponse, error) {
	if role != entity.RoleDoctor && role != entity.RoleNurse {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidSearchParameter, role)
	}

	u.normalize(req)

	cacheKey := searchCacheKey(role, req)
	if u.cache != nil {
		if res, ok := u.cache.Get(ctx, cacheKey); ok {
			return res, nil
		}
	}

	filter := &entity.ProfessionalFilter{
		Role:          role,
		VerifiedOnly:  true,
		Specialty:     req.Specialty,
		City:          req.City,
		MinExperience: req.MinExperience,
	}

	// The single I/O boundary. The candidate snapshot flows immutably
	// through coverage and ranking; nothing is re-fetched mid-computation.
	candidates, err := u.repo.FindProfessionals(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to load professionals: %+v", err)
		return nil, ErrProfileStoreUnavailable
	}

	geo := req.HasCoordinates()
	var ranked []matching.RankedCandidate
	if geo {
		center := entity.GeoPoint{Lng: *req.Lng, Lat: *req.Lat}
		ranked, err = u.coverage.Classify(ctx, center, *req.RadiusKm, candidates)
		if err != nil {
			return nil, err
		}
	} else {
		ranked = make([]matching.RankedCandidate, len(candidates))
		for i, p := range candidates {
			ranked[i] = matching.RankedCandidate{Professional: p, Coverage: matching.CoverageNone}
		}
	}

	matching.Rank(ranked, matching.ParseSortKey(req.SortBy), geo)

	res := u.paginate(ranked, req.Page, req.Limit, geo)

	if u.cache != nil {
		u.cache.Set(ctx, cacheKey, res)
	}
	return res, nil
}

// normalize coerces out-of-range numeric values to usable ones. Rejecting
// malformed (non-numeric) input is the delivery layer's job; by the time a
// request reaches here every field is typed.
func (u *searchUsecase) normalize(req *dto.SearchProfessionalsRequest) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = u.cfg.DefaultLimit
	}
	if req.Limit > u.cfg.MaxLimit {
		req.Limit = u.cfg.MaxLimit
	}
	if req.MinExperience != nil && *req.MinExperience < 0 {
		*req.MinExperience = 0
	}
	// An absent radius gets the default; an explicit non-positive one is
	// passed through so the own-area polygon test keeps its documented
	// behavior under radius <= 0.
	if req.RadiusKm == nil {
		radius := u.cfg.DefaultRadiusKm
		req.RadiusKm = &radius
	}
}

func (u *searchUsecase) paginate(ranked []matching.RankedCandidate, page, limit int, geo bool) *dto.SearchProfessionalsResponse {
	total := len(ranked)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	return &dto.SearchProfessionalsResponse{
		Professionals: converter.RankedCandidatesToResults(ranked[skip:end], geo),
		Pagination: dto.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  total,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
			Limit:       limit,
		},
	}
}

// searchCacheKey builds a cache key from the normalized request. Text
// filters are lowercased so equivalent queries share an entry.
func searchCacheKey(role string, req *dto.SearchProfessionalsRequest) string {
	lat, lng := "-", "-"
	if req.HasCoordinates() {
		lat = fmt.Sprintf("%.6f", *req.Lat)
		lng = fmt.Sprintf("%.6f", *req.Lng)
	}
	minExp := "-"
	if req.MinExperience != nil {
		minExp = fmt.Sprintf("%d", *req.MinExperience)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%.3f|%s|%d|%d",
		role,
		strings.ToLower(req.Specialty),
		strings.ToLower(req.City),
		minExp,
		lat, lng,
		*req.RadiusKm,
		matching.ParseSortKey(req.SortBy),
		req.Page, req.Limit,
	)
}
