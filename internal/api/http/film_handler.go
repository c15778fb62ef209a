package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/service"
)

type FilmHandler struct {
	films service.FilmService
}

func NewFilmHandler(films service.FilmService) *FilmHandler {
	return &FilmHandler{films: films}
}

// HandleSearch handles GET /api/v1/films?search=&category=&rating=
func (h *FilmHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.FilmFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Rating:   q.Get("rating"),
	}

	films, err := h.films.SearchFilms(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, films)
}

// HandleDetail handles GET /api/v1/films/{id}
func (h *FilmHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid film id"})
		return
	}

	detail, err := h.films.GetFilmDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// HandleCategories handles GET /api/v1/categories
func (h *FilmHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.films.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
