package postgres

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videostore-admin/internal/config"
	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

var placeholderPattern = regexp.MustCompile(`\$\d+`)

func TestBuildFilmSearch(t *testing.T) {
	t.Run("NoFilters", func(t *testing.T) {
		query, args := buildFilmSearch(domain.FilmFilter{})

		assert.Empty(t, args)
		assert.Empty(t, placeholderPattern.FindAllString(query, -1))
		assert.NotContains(t, query, "JOIN film_category")
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY f.title LIMIT 500")
	})

	t.Run("AllFiltersFixedOrder", func(t *testing.T) {
		query, args := buildFilmSearch(domain.FilmFilter{Search: "matrix", Category: "Action", Rating: "R"})

		// placeholder count equals parameter count
		assert.Len(t, args, 3)
		assert.Len(t, placeholderPattern.FindAllString(query, -1), 3)

		// clause order is title, category, rating
		titleIdx := strings.Index(query, "f.title ILIKE $1")
		categoryIdx := strings.Index(query, "c.name = $2")
		ratingIdx := strings.Index(query, "f.rating = $3")
		require.NotEqual(t, -1, titleIdx)
		require.NotEqual(t, -1, categoryIdx)
		require.NotEqual(t, -1, ratingIdx)
		assert.Less(t, titleIdx, categoryIdx)
		assert.Less(t, categoryIdx, ratingIdx)

		// filter values are bound, never spliced into the statement
		assert.NotContains(t, query, "matrix")
		assert.NotContains(t, query, "Action")
		assert.Equal(t, []any{"%matrix%", "Action", "R"}, args)
	})

	t.Run("CategoryOnlyAddsJoin", func(t *testing.T) {
		query, args := buildFilmSearch(domain.FilmFilter{Category: "Drama"})

		assert.Contains(t, query, "JOIN film_category fc ON f.film_id = fc.film_id")
		assert.Contains(t, query, "c.name = $1")
		assert.Equal(t, []any{"Drama"}, args)
	})

	t.Run("RatingOnlySkipsJoin", func(t *testing.T) {
		query, args := buildFilmSearch(domain.FilmFilter{Rating: "PG"})

		assert.NotContains(t, query, "JOIN film_category")
		assert.Contains(t, query, "f.rating = $1")
		assert.Equal(t, []any{"PG"}, args)
	})
}

func TestFilmRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFilmRepository(database.NewWithDB(db))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"film_id", "title", "description", "release_year", "language_id",
			"rental_duration", "rental_rate", "length", "replacement_cost", "rating", "special_features"}).
			AddRow(1, "ACADEMY DINOSAUR", "A Epic Drama", 2006, 1, 6, "0.99", 86, "20.99", "PG", "Deleted Scenes").
			AddRow(2, "ACE GOLDFINGER", nil, nil, 1, 3, "4.99", nil, "12.99", nil, nil)

		mock.ExpectQuery("SELECT DISTINCT f.film_id").WillReturnRows(rows)

		films, err := repo.Search(ctx, domain.FilmFilter{})
		assert.NoError(t, err)
		assert.Len(t, films, 2)

		assert.Equal(t, "ACADEMY DINOSAUR", films[0].Title)
		assert.Equal(t, "0.99", films[0].RentalRate.String())
		assert.Equal(t, "20.99", films[0].ReplacementCost.String())
		assert.Equal(t, "PG", *films[0].Rating)

		// nullable columns come back as nil, not zero stand-ins
		assert.Nil(t, films[1].Description)
		assert.Nil(t, films[1].ReleaseYear)
		assert.Nil(t, films[1].Length)
		assert.Nil(t, films[1].Rating)
		assert.Equal(t, 3, films[1].RentalDuration)
	})
}

func TestFilmRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewFilmRepository(database.NewWithDB(db))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"film_id", "title", "description", "release_year", "language_id",
			"rental_duration", "rental_rate", "length", "replacement_cost", "rating", "special_features"}).
			AddRow(42, "AFRICAN EGG", nil, 2006, 1, 6, "2.99", 130, "22.99", "G", nil)

		mock.ExpectQuery("SELECT (.+) FROM film f WHERE f.film_id = \\$1").
			WithArgs(42).
			WillReturnRows(rows)

		film, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, 42, film.ID)
		assert.Equal(t, "2.99", film.RentalRate.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM film f WHERE f.film_id = \\$1").
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows([]string{"film_id"}))

		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestFilmRepository_NotConnected(t *testing.T) {
	repo := NewFilmRepository(database.New(&config.Config{}))

	_, err := repo.Search(context.Background(), domain.FilmFilter{})
	assert.ErrorIs(t, err, database.ErrNotConnected)

	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, database.ErrNotConnected)
}
