package postgres

import (
	"context"
	"database/sql"
	"errors"

	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

type staffRepository struct {
	db *database.Manager
}

func NewStaffRepository(db *database.Manager) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT s.staff_id, s.first_name, s.last_name, s.email, s.store_id,
	                 s.active, s.username, s.address_id,
	                 a.address, a.district, ci.city, a.phone
	          FROM staff s
	          JOIN address a ON s.address_id = a.address_id
	          JOIN city ci ON a.city_id = ci.city_id
	          ORDER BY s.last_name, s.first_name`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []domain.Staff
	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *st)
	}
	return staff, rows.Err()
}

func (r *staffRepository) Create(ctx context.Context, ns *domain.NewStaff, passwordHash string) (int, error) {
	db, err := r.db.DB()
	if err != nil {
		return 0, err
	}

	var staffID int
	err = db.QueryRowContext(ctx, `INSERT INTO staff (first_name, last_name, email, store_id, active, username, password, address_id)
	          VALUES ($1, $2, $3, $4, true, $5, $6, $7) RETURNING staff_id`,
		ns.FirstName, ns.LastName, ns.Email, ns.StoreID, ns.Username, passwordHash, ns.AddressID).Scan(&staffID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrInsertFailed
	}
	if err != nil {
		return 0, writeError(err)
	}
	return staffID, nil
}

func (r *staffRepository) Update(ctx context.Context, s *domain.Staff) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}

	query := `UPDATE staff SET first_name = $1, last_name = $2, email = $3, store_id = $4, username = $5, active = $6
	          WHERE staff_id = $7`
	result, err := db.ExecContext(ctx, query, s.FirstName, s.LastName, s.Email, s.StoreID, s.Username, s.Active, s.ID)
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

// Delete removes payments and rentals handled by the staff member
// before the staff row; reversing the order trips the store's foreign
// key constraints.
func (r *staffRepository) Delete(ctx context.Context, id int) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payment WHERE staff_id = $1`, id); err != nil {
		return writeError(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rental WHERE staff_id = $1`, id); err != nil {
		return writeError(err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM staff WHERE staff_id = $1`, id)
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
