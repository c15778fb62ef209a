package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"videostore-admin/internal/database"
	"videostore-admin/internal/domain"
	"videostore-admin/internal/repository"
)

func TestCustomerRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(database.NewWithDB(db))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"customer_id", "store_id", "first_name", "last_name", "email",
			"address_id", "active", "address", "district", "city", "postal_code", "phone"}).
			AddRow(1, 1, "MARY", "SMITH", "mary@example.com", 5, true, "1913 Hanoi Way", "Nagasaki", "Sasebo", "35200", "28303384290").
			AddRow(2, 2, "PATRICIA", "JOHNSON", nil, 6, false, nil, nil, nil, nil, nil)

		mock.ExpectQuery("SELECT (.+) FROM customer c").
			WithArgs("%smith%").
			WillReturnRows(rows)

		customers, err := repo.Search(ctx, "smith")
		assert.NoError(t, err)
		assert.Len(t, customers, 2)
		assert.Equal(t, "mary@example.com", *customers[0].Email)
		assert.Equal(t, "Sasebo", *customers[0].City)
		assert.Nil(t, customers[1].Email)
		assert.Nil(t, customers[1].City)
		assert.False(t, customers[1].Active)
	})

	t.Run("EmptySearchHasNoParameters", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"customer_id", "store_id", "first_name", "last_name", "email",
			"address_id", "active", "address", "district", "city", "postal_code", "phone"})

		mock.ExpectQuery("SELECT (.+) FROM customer c").WillReturnRows(rows)

		customers, err := repo.Search(ctx, "")
		assert.NoError(t, err)
		assert.Empty(t, customers)
	})
}

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(database.NewWithDB(db))
	ctx := context.Background()

	nc := &domain.NewCustomer{
		FirstName:  "ANN",
		LastName:   "LEE",
		Email:      "ann@example.com",
		StoreID:    1,
		Address:    "47 MySakila Drive",
		District:   "Alberta",
		CityID:     300,
		PostalCode: "T2H",
		Phone:      "14033335568",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO address").
			WithArgs(nc.Address, nc.District, nc.CityID, nc.PostalCode, nc.Phone).
			WillReturnRows(sqlmock.NewRows([]string{"address_id"}).AddRow(42))
		mock.ExpectQuery("INSERT INTO customer").
			WithArgs(nc.StoreID, nc.FirstName, nc.LastName, nc.Email, 42).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow(7))
		mock.ExpectCommit()

		id, err := repo.Create(ctx, nc)
		assert.NoError(t, err)
		assert.Equal(t, 7, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AddressInsertFailureRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO address").
			WithArgs(nc.Address, nc.District, nc.CityID, nc.PostalCode, nc.Phone).
			WillReturnError(&pq.Error{Code: "23503", Message: "insert violates foreign key constraint"})
		mock.ExpectRollback()

		_, err := repo.Create(ctx, nc)
		assert.ErrorIs(t, err, repository.ErrConstraintViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCustomerRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(database.NewWithDB(db))
	ctx := context.Background()

	email := "mary@example.com"
	customer := &domain.Customer{ID: 1, StoreID: 2, FirstName: "MARY", LastName: "SMITH", Email: &email, Active: true}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE customer SET").
			WithArgs(customer.FirstName, customer.LastName, customer.Email, customer.StoreID, customer.Active, customer.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, customer))
	})

	t.Run("ZeroRowsIsNotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE customer SET").
			WithArgs(customer.FirstName, customer.LastName, customer.Email, customer.StoreID, customer.Active, customer.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, customer), repository.ErrNotFound)
	})
}

func TestCustomerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(database.NewWithDB(db))
	ctx := context.Background()

	t.Run("CascadesInDependencyOrder", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM payment WHERE customer_id").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("DELETE FROM rental WHERE customer_id").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM customer WHERE customer_id").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ConstraintViolationIsTyped", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM payment WHERE customer_id").
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM rental WHERE customer_id").
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM customer WHERE customer_id").
			WithArgs(2).
			WillReturnError(&pq.Error{Code: "23503", Message: "customer is still referenced"})
		mock.ExpectRollback()

		err := repo.Delete(ctx, 2)
		assert.ErrorIs(t, err, repository.ErrConstraintViolation)
		assert.Contains(t, err.Error(), "still referenced")
	})

	t.Run("MissingCustomerIsNotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM payment WHERE customer_id").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM rental WHERE customer_id").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM customer WHERE customer_id").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(ctx, 3), repository.ErrNotFound)
	})
}
