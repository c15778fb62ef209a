package service

import (
	"context"
	"time"

	"videostore-admin/internal/domain"
)

type FilmService interface {
	SearchFilms(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error)
	GetFilmDetail(ctx context.Context, filmID int) (*domain.FilmDetail, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type CustomerService interface {
	SearchCustomers(ctx context.Context, search string) ([]domain.Customer, error)
	AddCustomer(ctx context.Context, nc *domain.NewCustomer) (int, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int) error
	ListCities(ctx context.Context) ([]domain.City, error)
}

type StaffService interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	AddStaff(ctx context.Context, ns *domain.NewStaff) (int, error)
	UpdateStaff(ctx context.Context, s *domain.Staff) error
	DeleteStaff(ctx context.Context, id int) error
}

type RentalService interface {
	ListActiveRentals(ctx context.Context) ([]domain.Rental, error)
	ListRecentRentals(ctx context.Context, limit int) ([]domain.Rental, error)
	CreateRental(ctx context.Context, inventoryID, customerID, staffID int) (int, error)
	ProcessReturn(ctx context.Context, rentalID int) error
	ListInventory(ctx context.Context, filmID int) ([]domain.InventoryItem, error)
}

type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}

// opContext bounds a store operation. Cancellation abandons the wait;
// a statement already issued is not retracted, and nothing is retried.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
