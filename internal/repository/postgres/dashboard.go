package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

type dashboardRepository struct {
	db *database.Manager
}

func NewDashboardRepository(db *database.Manager) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) count(ctx context.Context, query string) (int, error) {
	db, err := r.db.DB()
	if err != nil {
		return 0, err
	}

	var n int
	if err := db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *dashboardRepository) CountFilms(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM film`)
}

func (r *dashboardRepository) CountCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customer`)
}

func (r *dashboardRepository) CountStaff(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM staff`)
}

func (r *dashboardRepository) CountActiveRentals(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM rental WHERE returned_date IS NULL`)
}

// CountOverdueRentals compares each open rental's date plus the film's
// rental duration against the current time. The film is reached
// through the inventory item the rental references.
func (r *dashboardRepository) CountOverdueRentals(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM rental r
	          JOIN inventory i ON r.inventory_id = i.inventory_id
	          JOIN film f ON i.film_id = f.film_id
	          WHERE r.returned_date IS NULL
	          AND r.rental_date + make_interval(days => f.rental_duration) < NOW()`)
}

func (r *dashboardRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	db, err := r.db.DB()
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err = db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payment`).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *dashboardRepository) TopFilms(ctx context.Context, limit int) ([]domain.TopFilm, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT f.film_id, f.title, COUNT(r.rental_id) AS rental_count
	          FROM film f
	          JOIN inventory i ON f.film_id = i.film_id
	          JOIN rental r ON i.inventory_id = r.inventory_id
	          GROUP BY f.film_id, f.title
	          ORDER BY rental_count DESC
	          LIMIT $1`
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []domain.TopFilm
	for rows.Next() {
		var tf domain.TopFilm
		if err := rows.Scan(&tf.ID, &tf.Title, &tf.RentalCount); err != nil {
			return nil, err
		}
		films = append(films, tf)
	}
	return films, rows.Err()
}

func (r *dashboardRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT city_id, city FROM city ORDER BY city LIMIT 600`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
