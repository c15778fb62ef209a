package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/logger"
	"videostore-admin/internal/repository"
)

const topFilmsLimit = 5

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	rentalRepo    repository.RentalRepository
	timeout       time.Duration
}

func NewDashboardService(dashboardRepo repository.DashboardRepository, rentalRepo repository.RentalRepository, timeout time.Duration) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo, rentalRepo: rentalRepo, timeout: timeout}
}

// GetStats fans the independent aggregate queries out across pooled
// connections and assembles the snapshot once every query has
// completed. Any failure cancels the remaining queries and no partial
// snapshot escapes.
func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var stats domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.dashboardRepo.CountFilms(gctx)
		stats.TotalFilms = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountCustomers(gctx)
		stats.TotalCustomers = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountStaff(gctx)
		stats.TotalStaff = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountActiveRentals(gctx)
		stats.ActiveRentals = n
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.CountOverdueRentals(gctx)
		stats.OverdueRentals = n
		return err
	})
	g.Go(func() error {
		total, err := s.dashboardRepo.TotalRevenue(gctx)
		stats.TotalRevenue = total
		return err
	})
	g.Go(func() error {
		films, err := s.dashboardRepo.TopFilms(gctx, topFilmsLimit)
		stats.TopFilms = films
		return err
	})
	g.Go(func() error {
		rentals, err := s.rentalRepo.ListRecent(gctx, defaultRecentLimit)
		stats.RecentRentals = rentals
		return err
	})

	if err := g.Wait(); err != nil {
		logger.DatabaseResult("GetDashboardStats", err)
		return nil, err
	}
	return &stats, nil
}
