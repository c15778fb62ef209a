package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videostore-admin/internal/config"
	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

type stubFilmService struct {
	films      []domain.Film
	detail     *domain.FilmDetail
	categories []domain.Category
	err        error

	gotFilter domain.FilmFilter
	gotID     int
}

func (s *stubFilmService) SearchFilms(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error) {
	s.gotFilter = filter
	return s.films, s.err
}

func (s *stubFilmService) GetFilmDetail(ctx context.Context, filmID int) (*domain.FilmDetail, error) {
	s.gotID = filmID
	return s.detail, s.err
}

func (s *stubFilmService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func newFilmRouter(svc *stubFilmService) http.Handler {
	return NewRouter(Handlers{
		DB:    database.New(&config.Config{}),
		Films: svc,
	})
}

func TestFilmHandler_HandleSearch(t *testing.T) {
	t.Run("PassesQueryFilters", func(t *testing.T) {
		svc := &stubFilmService{films: []domain.Film{{ID: 1, Title: "ACADEMY DINOSAUR"}}}
		router := newFilmRouter(svc)

		req := httptest.NewRequest("GET", "/api/v1/films?search=academy&category=Action&rating=PG", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.FilmFilter{Search: "academy", Category: "Action", Rating: "PG"}, svc.gotFilter)

		var films []domain.Film
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &films))
		require.Len(t, films, 1)
		assert.Equal(t, "ACADEMY DINOSAUR", films[0].Title)
	})

	t.Run("NotConnectedIsServiceUnavailable", func(t *testing.T) {
		svc := &stubFilmService{err: database.ErrNotConnected}
		router := newFilmRouter(svc)

		req := httptest.NewRequest("GET", "/api/v1/films", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestFilmHandler_HandleDetail(t *testing.T) {
	t.Run("ParsesPathID", func(t *testing.T) {
		svc := &stubFilmService{detail: &domain.FilmDetail{Film: domain.Film{ID: 42, Title: "AFRICAN EGG"}}}
		router := newFilmRouter(svc)

		req := httptest.NewRequest("GET", "/api/v1/films/42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 42, svc.gotID)
	})

	t.Run("UnknownFilmIsNotFound", func(t *testing.T) {
		svc := &stubFilmService{err: fmt.Errorf("film 999: %w", repository.ErrNotFound)}
		router := newFilmRouter(svc)

		req := httptest.NewRequest("GET", "/api/v1/films/999", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Error, "999")
	})

	t.Run("NonNumericIDNeverRoutes", func(t *testing.T) {
		svc := &stubFilmService{}
		router := newFilmRouter(svc)

		req := httptest.NewRequest("GET", "/api/v1/films/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"NotConnected", database.ErrNotConnected, http.StatusServiceUnavailable},
		{"NotFound", repository.ErrNotFound, http.StatusNotFound},
		{"ConstraintViolation", repository.ErrConstraintViolation, http.StatusConflict},
		{"InsertFailed", repository.ErrInsertFailed, http.StatusUnprocessableEntity},
		{"ConnectionError", &database.ConnectionError{Op: "connect", Err: assert.AnError}, http.StatusBadGateway},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
