package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

// defaultRentalRate is charged when the film behind an inventory item
// has no rate on record.
var defaultRentalRate = decimal.New(499, -2)

const rentalSelect = `SELECT r.rental_id, r.rental_date, r.returned_date, r.inventory_id,
	       r.customer_id, r.staff_id,
	       c.first_name || ' ' || c.last_name AS customer_name,
	       f.title AS film_title,
	       s.first_name || ' ' || s.last_name AS staff_name
	FROM rental r
	JOIN customer c ON r.customer_id = c.customer_id
	JOIN inventory i ON r.inventory_id = i.inventory_id
	JOIN film f ON i.film_id = f.film_id
	JOIN staff s ON r.staff_id = s.staff_id`

type rentalRepository struct {
	db *database.Manager
}

func NewRentalRepository(db *database.Manager) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.Rental, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := rentalSelect + `
	WHERE r.returned_date IS NULL
	ORDER BY r.rental_date DESC
	LIMIT 500`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRentals(rows)
}

func (r *rentalRepository) ListRecent(ctx context.Context, limit int) ([]domain.Rental, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := rentalSelect + `
	ORDER BY r.rental_date DESC
	LIMIT $1`
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRentals(rows)
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

// Create executes the rental composite operation as one transaction:
// insert the rental, read back its generated identity, look up the
// film's rental rate through the inventory item, and insert the
// matching payment. A failure at any step rolls the whole sequence
// back, so a rental row never exists without its payment.
func (r *rentalRepository) Create(ctx context.Context, inventoryID, customerID, staffID int) (int, error) {
	db, err := r.db.DB()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var rentalID int
	err = tx.QueryRowContext(ctx, `INSERT INTO rental (rental_date, inventory_id, customer_id, staff_id)
	          VALUES (NOW(), $1, $2, $3) RETURNING rental_id`,
		inventoryID, customerID, staffID).Scan(&rentalID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrInsertFailed
	}
	if err != nil {
		return 0, writeError(err)
	}

	rate := defaultRentalRate
	err = tx.QueryRowContext(ctx, `SELECT f.rental_rate FROM film f
	          JOIN inventory i ON f.film_id = i.film_id
	          WHERE i.inventory_id = $1`, inventoryID).Scan(&rate)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO payment (customer_id, staff_id, rental_id, amount, payment_date)
	          VALUES ($1, $2, $3, $4, NOW())`,
		customerID, staffID, rentalID, rate)
	if err != nil {
		return 0, writeError(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rentalID, nil
}

// ProcessReturn stamps the open rental with the current time. A rental
// that does not exist, or is already returned, affects zero rows and
// surfaces as ErrNotFound.
func (r *rentalRepository) ProcessReturn(ctx context.Context, rentalID int) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE rental SET returned_date = NOW() WHERE rental_id = $1 AND returned_date IS NULL`, rentalID)
	if err != nil {
		return writeError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) ListInventory(ctx context.Context, filmID int) ([]domain.InventoryItem, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT i.inventory_id, i.store_id, f.title,
	                 r.rental_id IS NULL AS available
	          FROM inventory i
	          JOIN film f ON i.film_id = f.film_id
	          LEFT JOIN rental r ON i.inventory_id = r.inventory_id AND r.returned_date IS NULL
	          WHERE i.film_id = $1
	          ORDER BY i.store_id, i.inventory_id`
	rows, err := db.QueryContext(ctx, query, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.StoreID, &item.FilmTitle, &item.Available); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
