package service

import (
	"context"
	"time"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/logger"
	"videostore-admin/internal/repository"
)

type filmService struct {
	filmRepo repository.FilmRepository
	timeout  time.Duration
}

func NewFilmService(filmRepo repository.FilmRepository, timeout time.Duration) FilmService {
	return &filmService{filmRepo: filmRepo, timeout: timeout}
}

func (s *filmService) SearchFilms(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	logger.DatabaseCall("SearchFilms", "search", filter.Search, "category", filter.Category, "rating", filter.Rating)
	films, err := s.filmRepo.Search(ctx, filter)
	logger.DatabaseResult("SearchFilms", err, "count", len(films))
	return films, err
}

// GetFilmDetail issues the film lookup plus its three relation reads
// sequentially; a missing film short-circuits with ErrNotFound before
// any relation is fetched.
func (s *filmService) GetFilmDetail(ctx context.Context, filmID int) (*domain.FilmDetail, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	film, err := s.filmRepo.GetByID(ctx, filmID)
	if err != nil {
		return nil, err
	}

	actors, err := s.filmRepo.ListActors(ctx, filmID)
	if err != nil {
		return nil, err
	}

	categories, err := s.filmRepo.ListFilmCategories(ctx, filmID)
	if err != nil {
		return nil, err
	}

	inventory, err := s.filmRepo.StoreAvailability(ctx, filmID)
	if err != nil {
		return nil, err
	}

	return &domain.FilmDetail{
		Film:             *film,
		Actors:           actors,
		Categories:       categories,
		InventoryByStore: inventory,
	}, nil
}

func (s *filmService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.filmRepo.ListCategories(ctx)
}
