package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/docspot/docspot-api/internal/delivery/dto"
	"github.com/docspot/docspot-api/internal/domain/entity"
	"github.com/docspot/docspot-api/internal/usecase"
	"github.com/docspot/docspot-api/pkg/response"
	"github.com/docspot/docspot-api/pkg/validator"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
	validator     *validator.CustomValidator
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase, validator *validator.CustomValidator) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
		validator:     validator,
	}
}

func (h *SearchHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, entity.RoleDoctor)
}

func (h *SearchHandler) SearchNurses(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, entity.RoleNurse)
}

func (h *SearchHandler) search(w http.ResponseWriter, r *http.Request, role string) {
	req, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	result, err := h.searchUsecase.Search(r.Context(), role, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSearchParameter):
			response.Error(w, http.StatusBadRequest, "Invalid search parameters", nil)
		case errors.Is(err, usecase.ErrProfileStoreUnavailable):
			response.Error(w, http.StatusServiceUnavailable, "Search is temporarily unavailable", nil)
		default:
			response.InternalServerError(w, "Failed to search professionals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", result)
}

// parseQuery turns the raw query string into a typed request. Non-numeric
// page, limit or min_experience are rejected. Coordinates are different:
// clients pass partial location data on purpose, so a missing, non-numeric
// or out-of-range lat/lng silently routes the request down the non-geo path,
// and a non-numeric radius falls back to the default.
func (h *SearchHandler) parseQuery(w http.ResponseWriter, r *http.Request) (*dto.SearchProfessionalsRequest, bool) {
	q := r.URL.Query()
	req := &dto.SearchProfessionalsRequest{
		Specialty: strings.TrimSpace(q.Get("specialty")),
		City:      strings.TrimSpace(q.Get("city")),
		SortBy:    q.Get("sort_by"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid page parameter", nil)
			return nil, false
		}
		req.Page = page
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid limit parameter", nil)
			return nil, false
		}
		req.Limit = limit
	}

	if raw := q.Get("min_experience"); raw != "" {
		minExp, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid min_experience parameter", nil)
			return nil, false
		}
		req.MinExperience = &minExp
	}

	if rawLat, rawLng := q.Get("lat"), q.Get("lng"); rawLat != "" && rawLng != "" {
		lat, errLat := strconv.ParseFloat(rawLat, 64)
		lng, errLng := strconv.ParseFloat(rawLng, 64)
		if errLat == nil && errLng == nil {
			req.Lat = &lat
			req.Lng = &lng
		}
	}

	if raw := q.Get("radius"); raw != "" {
		if radius, err := strconv.ParseFloat(raw, 64); err == nil {
			req.RadiusKm = &radius
		}
	}

	if err := h.validator.Validate(req); err != nil {
		fields := h.validator.FormatValidationErrors(err)

		// Out-of-range coordinates are unusable location data, same
		// degrade as non-numeric input.
		if _, ok := fields["Lat"]; ok {
			req.Lat, req.Lng = nil, nil
			delete(fields, "Lat")
		}
		if _, ok := fields["Lng"]; ok {
			req.Lat, req.Lng = nil, nil
			delete(fields, "Lng")
		}

		if len(fields) > 0 {
			response.ValidationError(w, fields)
			return nil, false
		}
	}

	return req, true
}
