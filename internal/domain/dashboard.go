package domain

import "github.com/shopspring/decimal"

type TopFilm struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	RentalCount int    `json:"rental_count"`
}

// DashboardStats is an ephemeral snapshot rebuilt on every request
// from independent aggregate queries. A partially filled snapshot is
// never returned to a caller.
type DashboardStats struct {
	TotalFilms     int             `json:"total_films"`
	TotalCustomers int             `json:"total_customers"`
	TotalStaff     int             `json:"total_staff"`
	ActiveRentals  int             `json:"active_rentals"`
	OverdueRentals int             `json:"overdue_rentals"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TopFilms       []TopFilm       `json:"top_films"`
	RecentRentals  []Rental        `json:"recent_rentals"`
}
