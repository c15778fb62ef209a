// Package postgres implements the repository contracts against a
// PostgreSQL store. Repositories resolve their handle through the
// connection manager on every call, so operations issued while
// disconnected fail fast with database.ErrNotConnected.
package postgres

import (
	"videostore-admin/internal/database"
	"videostore-admin/internal/repository"
)

type Store struct {
	db *database.Manager
	repository.FilmRepository
	repository.CustomerRepository
	repository.StaffRepository
	repository.RentalRepository
	repository.DashboardRepository
}

func NewStore(db *database.Manager) *Store {
	return &Store{
		db:                  db,
		FilmRepository:      NewFilmRepository(db),
		CustomerRepository:  NewCustomerRepository(db),
		StaffRepository:     NewStaffRepository(db),
		RentalRepository:    NewRentalRepository(db),
		DashboardRepository: NewDashboardRepository(db),
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}
