package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

// filmListLimit caps entity list queries so repeated calls stay
// deterministic and bounded.
const filmListLimit = 500

const filmColumns = `f.film_id, f.title, f.description, f.release_year,
	       COALESCE(f.language_id, 1), COALESCE(f.rental_duration, 3), f.rental_rate,
	       f.length, f.replacement_cost, f.rating, f.special_features`

type filmRepository struct {
	db *database.Manager
}

func NewFilmRepository(db *database.Manager) repository.FilmRepository {
	return &filmRepository{db: db}
}

// buildFilmSearch assembles the film search statement. The category
// join is included only when a category filter is present, and filter
// clauses always land in the order title, category, rating no matter
// which subset was supplied. Every user-supplied value is bound as a
// parameter; none is spliced into the statement text.
func buildFilmSearch(f domain.FilmFilter) (string, []any) {
	query := `SELECT DISTINCT ` + filmColumns + `
	FROM film f`

	var args []any
	var conditions []string
	argIdx := 1

	if f.Category != "" {
		query += `
	JOIN film_category fc ON f.film_id = fc.film_id
	JOIN category c ON fc.category_id = c.category_id`
	}

	if f.Search != "" {
		conditions = append(conditions, fmt.Sprintf("f.title ILIKE $%d", argIdx))
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}
	if f.Category != "" {
		conditions = append(conditions, fmt.Sprintf("c.name = $%d", argIdx))
		args = append(args, f.Category)
		argIdx++
	}
	if f.Rating != "" {
		conditions = append(conditions, fmt.Sprintf("f.rating = $%d", argIdx))
		args = append(args, f.Rating)
		argIdx++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY f.title LIMIT %d", filmListLimit)
	return query, args
}

func (r *filmRepository) Search(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query, args := buildFilmSearch(filter)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []domain.Film
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, *f)
	}
	return films, rows.Err()
}

func (r *filmRepository) GetByID(ctx context.Context, id int) (*domain.Film, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + filmColumns + ` FROM film f WHERE f.film_id = $1`
	f, err := scanFilm(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *filmRepository) ListActors(ctx context.Context, filmID int) ([]domain.Actor, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT a.actor_id, a.first_name, a.last_name
	          FROM actor a
	          JOIN film_actor fa ON a.actor_id = fa.actor_id
	          WHERE fa.film_id = $1
	          ORDER BY a.last_name, a.first_name`
	rows, err := db.QueryContext(ctx, query, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actors []domain.Actor
	for rows.Next() {
		var a domain.Actor
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	return actors, rows.Err()
}

func (r *filmRepository) ListFilmCategories(ctx context.Context, filmID int) ([]domain.Category, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT c.category_id, c.name
	          FROM category c
	          JOIN film_category fc ON c.category_id = fc.category_id
	          WHERE fc.film_id = $1
	          ORDER BY c.name`
	rows, err := db.QueryContext(ctx, query, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *filmRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT category_id, name FROM category ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *filmRepository) StoreAvailability(ctx context.Context, filmID int) ([]domain.StoreInventory, error) {
	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT i.store_id,
	                 COUNT(*) AS total,
	                 COALESCE(SUM(CASE WHEN r.rental_id IS NULL THEN 1 ELSE 0 END), 0) AS available
	          FROM inventory i
	          LEFT JOIN rental r ON i.inventory_id = r.inventory_id AND r.returned_date IS NULL
	          WHERE i.film_id = $1
	          GROUP BY i.store_id
	          ORDER BY i.store_id`
	rows, err := db.QueryContext(ctx, query, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inventory []domain.StoreInventory
	for rows.Next() {
		var si domain.StoreInventory
		if err := rows.Scan(&si.StoreID, &si.TotalCount, &si.AvailableCount); err != nil {
			return nil, err
		}
		inventory = append(inventory, si)
	}
	return inventory, rows.Err()
}
