package service

import (
	"context"
	"time"

	"videostore-admin/internal/domain"
	"videostore-admin/internal/logger"
	"videostore-admin/internal/repository"
)

const defaultRecentLimit = 10

type rentalService struct {
	rentalRepo repository.RentalRepository
	timeout    time.Duration
}

func NewRentalService(rentalRepo repository.RentalRepository, timeout time.Duration) RentalService {
	return &rentalService{rentalRepo: rentalRepo, timeout: timeout}
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.rentalRepo.ListActive(ctx)
}

func (s *rentalService) ListRecentRentals(ctx context.Context, limit int) ([]domain.Rental, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.rentalRepo.ListRecent(ctx, limit)
}

func (s *rentalService) CreateRental(ctx context.Context, inventoryID, customerID, staffID int) (int, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	id, err := s.rentalRepo.Create(ctx, inventoryID, customerID, staffID)
	logger.DatabaseResult("CreateRental", err, "rental_id", id, "inventory_id", inventoryID)
	return id, err
}

func (s *rentalService) ProcessReturn(ctx context.Context, rentalID int) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	err := s.rentalRepo.ProcessReturn(ctx, rentalID)
	logger.DatabaseResult("ProcessReturn", err, "rental_id", rentalID)
	return err
}

func (s *rentalService) ListInventory(ctx context.Context, filmID int) ([]domain.InventoryItem, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return s.rentalRepo.ListInventory(ctx, filmID)
}
