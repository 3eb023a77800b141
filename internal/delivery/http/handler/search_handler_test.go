package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docspot/docspot-api/internal/delivery/dto"
	"github.com/docspot/docspot-api/internal/domain/entity"
	"github.com/docspot/docspot-api/internal/usecase"
	"github.com/docspot/docspot-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchUsecase struct {
	gotRole string
	gotReq  *dto.SearchProfessionalsRequest
	res     *dto.SearchProfessionalsResponse
	err     error
	calls   int
}

func (s *stubSearchUsecase) Search(ctx context.Context, role string, req *dto.SearchProfessionalsRequest) (*dto.SearchProfessionalsResponse, error) {
	s.calls++
	s.gotRole = role
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	if s.res != nil {
		return s.res, nil
	}
	return &dto.SearchProfessionalsResponse{}, nil
}

func newTestHandler(stub *stubSearchUsecase) *SearchHandler {
	return NewSearchHandler(stub, validator.NewValidator())
}

func doSearch(h *SearchHandler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.SearchDoctors(w, req)
	return w
}

func TestSearchHandlerParsesQuery(t *testing.T) {
	stub := &stubSearchUsecase{}
	h := newTestHandler(stub)

	w := doSearch(h, "/doctors/search?specialty=cardiology&city=Mumbai&min_experience=3&lat=19.0760&lng=72.8777&radius=25&sort_by=rating&page=2&limit=5")
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, stub.gotReq)
	assert.Equal(t, entity.RoleDoctor, stub.gotRole)
	assert.Equal(t, "cardiology", stub.gotReq.Specialty)
	assert.Equal(t, "Mumbai", stub.gotReq.City)
	require.NotNil(t, stub.gotReq.MinExperience)
	assert.Equal(t, 3, *stub.gotReq.MinExperience)
	require.True(t, stub.gotReq.HasCoordinates())
	assert.InDelta(t, 19.0760, *stub.gotReq.Lat, 1e-9)
	assert.InDelta(t, 72.8777, *stub.gotReq.Lng, 1e-9)
	require.NotNil(t, stub.gotReq.RadiusKm)
	assert.InDelta(t, 25, *stub.gotReq.RadiusKm, 1e-9)
	assert.Equal(t, "rating", stub.gotReq.SortBy)
	assert.Equal(t, 2, stub.gotReq.Page)
	assert.Equal(t, 5, stub.gotReq.Limit)
}

func TestSearchHandlerRejectsNonNumericPage(t *testing.T) {
	stub := &stubSearchUsecase{}
	h := newTestHandler(stub)

	w := doSearch(h, "/doctors/search?page=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls)
}

func TestSearchHandlerRejectsNonNumericLimit(t *testing.T) {
	stub := &stubSearchUsecase{}
	h := newTestHandler(stub)

	w := doSearch(h, "/doctors/search?limit=ten")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls)
}

func TestSearchHandlerRejectsNonNumericMinExperience(t *testing.T) {
	stub := &stubSearchUsecase{}
	h := newTestHandler(stub)

	w := doSearch(h, "/doctors/search?min_experience=lots")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls)
}

func TestSearchHandlerDegradesOnBadCoordinates(t *testing.T) {
	cases := map[string]string{
		"non-numeric lat":  "/doctors/search?lat=abc&lng=72.8777",
		"missing lng":      "/doctors/search?lat=19.0760",
		"lat out of range": "/doctors/search?lat=95&lng=72.8777",
		"lng out of range": "/doctors/search?lat=19.0760&lng=250",
	}

	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubSearchUsecase{}
			h := newTestHandler(stub)

			w := doSearch(h, target)
			require.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, stub.gotReq)
			assert.False(t, stub.gotReq.HasCoordinates())
		})
	}
}

func TestSearchHandlerIgnoresNonNumericRadius(t *testing.T) {
	stub := &stubSearchUsecase{}
	h := newTestHandler(stub)

	w := doSearch(h, "/doctors/search?lat=19.0760&lng=72.8777&radius=far")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.gotReq)
	assert.Nil(t, stub.gotReq.RadiusKm)
}

func TestSearchHandlerStoreUnavailable(t *testing.T) {
	stub := &stubSearchUsecase{err: usecase.ErrProfileStoreUnavailable}
	h := newTestHandler(stub)

	w := doSearch(h, "/doctors/search")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearchHandlerNurseRoute(t *testing.T) {
	stub := &stubSearchUsecase{}
	h := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/nurses/search", nil)
	w := httptest.NewRecorder()
	h.SearchNurses(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.RoleNurse, stub.gotRole)
}

func TestSearchHandlerResponseEnvelope(t *testing.T) {
	stub := &stubSearchUsecase{res: &dto.SearchProfessionalsResponse{
		Professionals: []dto.ProfessionalResult{{FullName: "Dr. Asha"}},
		Pagination: dto.Pagination{
			CurrentPage: 1,
			TotalPages:  1,
			TotalCount:  1,
			Limit:       10,
		},
	}}
	h := newTestHandler(stub)

	w := doSearch(h, "/doctors/search")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Professionals []map[string]interface{} `json:"professionals"`
			Pagination    map[string]interface{}   `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Professionals, 1)
	assert.Equal(t, "Dr. Asha", body.Data.Professionals[0]["full_name"])
	assert.EqualValues(t, 1, body.Data.Pagination["currentPage"])
	assert.EqualValues(t, 10, body.Data.Pagination["limit"])
}
