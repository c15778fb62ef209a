package postgres

import (
	"context"
	"database/sql"
	"errors"

	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

const customerColumns = `c.customer_id, c.store_id, c.first_name, c.last_name, c.email,
	       c.address_id, c.active,
	       a.address, a.district, ci.city, a.postal_code, a.phone`

type customerRepository struct {
	db *database.Manager
}

func NewCustomerRepository(db *database.Manager) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Search(ctx context.Context, search string) ([]domain.Customer, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + customerColumns + `
	          FROM customer c
	          JOIN address a ON c.address_id = a.address_id
	          JOIN city ci ON a.city_id = ci.city_id`

	var args []any
	if search != "" {
		query += ` WHERE c.first_name ILIKE $1 OR c.last_name ILIKE $1 OR c.email ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY c.last_name, c.first_name LIMIT 500`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

// Create inserts the prerequisite address row, reads back its
// generated identity, then inserts the customer referencing it. Both
// inserts run in one transaction so a failure cannot leave an orphaned
// address behind.
func (r *customerRepository) Create(ctx context.Context, nc *domain.NewCustomer) (int, error) {
	db, err := r.db.DB()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var addressID int
	err = tx.QueryRowContext(ctx, `INSERT INTO address (address, district, city_id, postal_code, phone)
	          VALUES ($1, $2, $3, $4, $5) RETURNING address_id`,
		nc.Address, nc.District, nc.CityID, nc.PostalCode, nc.Phone).Scan(&addressID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrInsertFailed
	}
	if err != nil {
		return 0, writeError(err)
	}

	var customerID int
	err = tx.QueryRowContext(ctx, `INSERT INTO customer (store_id, first_name, last_name, email, address_id, active, create_date)
	          VALUES ($1, $2, $3, $4, $5, true, NOW()) RETURNING customer_id`,
		nc.StoreID, nc.FirstName, nc.LastName, nc.Email, addressID).Scan(&customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrInsertFailed
	}
	if err != nil {
		return 0, writeError(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return customerID, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}

	query := `UPDATE customer SET first_name = $1, last_name = $2, email = $3, store_id = $4, active = $5
	          WHERE customer_id = $6`
	result, err := db.ExecContext(ctx, query, c.FirstName, c.LastName, c.Email, c.StoreID, c.Active, c.ID)
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

// Delete removes dependent payments and rentals before the customer
// row itself; the store's referential constraints require that order.
// The whole cascade is one transaction.
func (r *customerRepository) Delete(ctx context.Context, id int) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payment WHERE customer_id = $1`, id); err != nil {
		return writeError(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rental WHERE customer_id = $1`, id); err != nil {
		return writeError(err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM customer WHERE customer_id = $1`, id)
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

	return tx.Commit()
}
