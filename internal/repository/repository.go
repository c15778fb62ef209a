package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"videostore-admin/internal/domain"
)

type FilmRepository interface {
	Search(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error)
	GetByID(ctx context.Context, id int) (*domain.Film, error)
	ListActors(ctx context.Context, filmID int) ([]domain.Actor, error)
	ListFilmCategories(ctx context.Context, filmID int) ([]domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	StoreAvailability(ctx context.Context, filmID int) ([]domain.StoreInventory, error)
}

type CustomerRepository interface {
	Search(ctx context.Context, search string) ([]domain.Customer, error)
	Create(ctx context.Context, nc *domain.NewCustomer) (int, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int) error
}

type StaffRepository interface {
	List(ctx context.Context) ([]domain.Staff, error)
	Create(ctx context.Context, ns *domain.NewStaff, passwordHash string) (int, error)
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id int) error
}

type RentalRepository interface {
	ListActive(ctx context.Context) ([]domain.Rental, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Rental, error)
	Create(ctx context.Context, inventoryID, customerID, staffID int) (int, error)
	ProcessReturn(ctx context.Context, rentalID int) error
	ListInventory(ctx context.Context, filmID int) ([]domain.InventoryItem, error)
}

type DashboardRepository interface {
	CountFilms(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	CountStaff(ctx context.Context) (int, error)
	CountActiveRentals(ctx context.Context) (int, error)
	CountOverdueRentals(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	TopFilms(ctx context.Context, limit int) ([]domain.TopFilm, error)
	ListCities(ctx context.Context) ([]domain.City, error)
}
