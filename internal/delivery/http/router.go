package http

import (
	"net/http"

	"github.com/docspot/docspot-api/internal/delivery/http/handler"
	"github.com/docspot/docspot-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	searchHandler  *handler.SearchHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	searchHandler *handler.SearchHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		searchHandler:  searchHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Search routes (public)
	api.HandleFunc("/doctors/search", r.searchHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/nurses/search", r.searchHandler.SearchNurses).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
