package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/docspot/docspot-api/config"
	"github.com/docspot/docspot-api/internal/delivery/dto"
	"github.com/docspot/docspot-api/internal/domain/entity"
	"github.com/docspot/docspot-api/internal/matching"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfessionalRepo struct {
	professionals []entity.Professional
	err           error
	calls         int
	lastFilter    *entity.ProfessionalFilter
}

func (f *fakeProfessionalRepo) FindProfessionals(ctx context.Context, filter *entity.ProfessionalFilter) ([]entity.Professional, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.professionals, nil
}

type fakeCache struct {
	entries map[string]*dto.SearchProfessionalsResponse
	sets    int
}

func (f *fakeCache) Get(ctx context.Context, key string) (*dto.SearchProfessionalsResponse, bool) {
	res, ok := f.entries[key]
	return res, ok
}

func (f *fakeCache) Set(ctx context.Context, key string, res *dto.SearchProfessionalsResponse) {
	if f.entries == nil {
		f.entries = make(map[string]*dto.SearchProfessionalsResponse)
	}
	f.entries[key] = res
	f.sets++
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		DefaultRadiusKm: 10,
		DefaultLimit:    10,
		MaxLimit:        100,
		CacheTTL:        time.Minute,
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestUsecase(repo *fakeProfessionalRepo, cache SearchCache) SearchUsecase {
	coverage := matching.NewCoverageIndex(matching.Gazetteer{
		"mumbai": {Lng: 72.8777, Lat: 19.0760},
	})
	return NewSearchUsecase(quietLogger(), testSearchConfig(), repo, coverage, cache)
}

func verifiedDoctors(n int) []entity.Professional {
	verified := true
	out := make([]entity.Professional, n)
	for i := range out {
		rating := float64(i%5) + 0.5
		out[i] = entity.Professional{
			Role:             entity.RoleDoctor,
			FullName:         fmt.Sprintf("Doctor %02d", i),
			Specialty:        "general",
			City:             "Mumbai",
			IsVerified:       &verified,
			SubscriptionTier: entity.TierFree,
			AverageRating:    &rating,
			ExperienceYears:  i,
		}
	}
	return out
}

func TestSearchNonGeoPagination(t *testing.T) {
	repo := &fakeProfessionalRepo{professionals: verifiedDoctors(15)}
	u := newTestUsecase(repo, nil)

	res, err := u.Search(context.Background(), entity.RoleDoctor, &dto.SearchProfessionalsRequest{
		Page:  2,
		Limit: 10,
	})
	require.NoError(t, err)

	assert.Len(t, res.Professionals, 5)
	assert.Equal(t, dto.Pagination{
		CurrentPage: 2,
		TotalPages:  2,
		TotalCount:  15,
		HasNextPage: false,
		HasPrevPage: true,
		Limit:       10,
	}, res.Pagination)

	// non-geo results carry no distance or coverage annotations
	for _, p := range res.Professionals {
		assert.Nil(t, p.DistanceKm)
		assert.Empty(t, p.Coverage)
	}
}

func TestSearchGeoAnnotations(t *testing.T) {
	verified := true
	areaCenter := entity.GeoPoint{Lng: 72.8777, Lat: 19.0760 + 8.0/111.0}
	repo := &fakeProfessionalRepo{professionals: []entity.Professional{
		{
			Role: entity.RoleDoctor, FullName: "Dr. Own Area", IsVerified: &verified,
			SubscriptionTier: entity.TierFree,
			ServiceArea: entity.ServiceAreaRing{
				{Lng: areaCenter.Lng - 0.01, Lat: areaCenter.Lat - 0.01},
				{Lng: areaCenter.Lng + 0.01, Lat: areaCenter.Lat - 0.01},
				{Lng: areaCenter.Lng + 0.01, Lat: areaCenter.Lat + 0.01},
				{Lng: areaCenter.Lng - 0.01, Lat: areaCenter.Lat + 0.01},
				{Lng: areaCenter.Lng - 0.01, Lat: areaCenter.Lat - 0.01},
			},
		},
		{Role: entity.RoleDoctor, FullName: "Dr. City Fallback", City: "Mumbai", IsVerified: &verified, SubscriptionTier: entity.TierFree},
		{Role: entity.RoleDoctor, FullName: "Dr. Unknown City", City: "Antarctica-Base", IsVerified: &verified, SubscriptionTier: entity.TierFree},
	}}
	u := newTestUsecase(repo, nil)

	lat, lng := 19.0760, 72.8777
	res, err := u.Search(context.Background(), entity.RoleDoctor, &dto.SearchProfessionalsRequest{
		Lat:    &lat,
		Lng:    &lng,
		SortBy: "distance",
	})
	require.NoError(t, err)

	require.Equal(t, 2, res.Pagination.TotalCount)
	require.Len(t, res.Professionals, 2)

	first, second := res.Professionals[0], res.Professionals[1]
	assert.Equal(t, "Dr. City Fallback", first.FullName)
	assert.Equal(t, "city-fallback", first.Coverage)
	require.NotNil(t, first.DistanceKm)
	assert.InDelta(t, 0.0, *first.DistanceKm, 1e-6)

	assert.Equal(t, "Dr. Own Area", second.FullName)
	assert.Equal(t, "own-area", second.Coverage)
	require.NotNil(t, second.DistanceKm)
	assert.InDelta(t, 8.0, *second.DistanceKm, 0.1)
}

func TestSearchBuildsVerifiedOnlyFilter(t *testing.T) {
	repo := &fakeProfessionalRepo{}
	u := newTestUsecase(repo, nil)

	minExp := 3
	_, err := u.Search(context.Background(), entity.RoleNurse, &dto.SearchProfessionalsRequest{
		Specialty:     "pediatrics",
		City:          "Mumbai",
		MinExperience: &minExp,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, entity.RoleNurse, repo.lastFilter.Role)
	assert.True(t, repo.lastFilter.VerifiedOnly)
	assert.Equal(t, "pediatrics", repo.lastFilter.Specialty)
	assert.Equal(t, "Mumbai", repo.lastFilter.City)
	require.NotNil(t, repo.lastFilter.MinExperience)
	assert.Equal(t, 3, *repo.lastFilter.MinExperience)
}

func TestSearchUnknownRole(t *testing.T) {
	u := newTestUsecase(&fakeProfessionalRepo{}, nil)

	_, err := u.Search(context.Background(), "ambulance", &dto.SearchProfessionalsRequest{})
	assert.ErrorIs(t, err, ErrInvalidSearchParameter)
}

func TestSearchStoreUnavailable(t *testing.T) {
	repo := &fakeProfessionalRepo{err: errors.New("connection refused")}
	u := newTestUsecase(repo, nil)

	_, err := u.Search(context.Background(), entity.RoleDoctor, &dto.SearchProfessionalsRequest{})
	assert.ErrorIs(t, err, ErrProfileStoreUnavailable)
}

func TestSearchEmptyResult(t *testing.T) {
	u := newTestUsecase(&fakeProfessionalRepo{}, nil)

	res, err := u.Search(context.Background(), entity.RoleDoctor, &dto.SearchProfessionalsRequest{})
	require.NoError(t, err)

	assert.Empty(t, res.Professionals)
	assert.Equal(t, 0, res.Pagination.TotalCount)
	assert.Equal(t, 0, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNextPage)
	assert.False(t, res.Pagination.HasPrevPage)
}

func TestSearchNormalizesOutOfRangeValues(t *testing.T) {
	repo := &fakeProfessionalRepo{professionals: verifiedDoctors(3)}
	u := newTestUsecase(repo, nil)

	minExp := -4
	res, err := u.Search(context.Background(), entity.RoleDoctor, &dto.SearchProfessionalsRequest{
		Page:          0,
		Limit:         500,
		MinExperience: &minExp,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Pagination.CurrentPage)
	assert.Equal(t, 100, res.Pagination.Limit)
	require.NotNil(t, repo.lastFilter.MinExperience)
	assert.Equal(t, 0, *repo.lastFilter.MinExperience)
}

func TestSearchIdempotent(t *testing.T) {
	repo := &fakeProfessionalRepo{professionals: verifiedDoctors(25)}
	u := newTestUsecase(repo, nil)

	req := func() *dto.SearchProfessionalsRequest {
		return &dto.SearchProfessionalsRequest{SortBy: "rating", Page: 1, Limit: 10}
	}

	first, err := u.Search(context.Background(), entity.RoleDoctor, req())
	require.NoError(t, err)
	second, err := u.Search(context.Background(), entity.RoleDoctor, req())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearchUsesCache(t *testing.T) {
	repo := &fakeProfessionalRepo{professionals: verifiedDoctors(5)}
	cache := &fakeCache{}
	u := newTestUsecase(repo, cache)

	req := func() *dto.SearchProfessionalsRequest {
		return &dto.SearchProfessionalsRequest{SortBy: "name"}
	}

	first, err := u.Search(context.Background(), entity.RoleDoctor, req())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)

	second, err := u.Search(context.Background(), entity.RoleDoctor, req())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second search should be served from cache")
	assert.Equal(t, first, second)
}
