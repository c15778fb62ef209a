package postgres

import (
	"database/sql"
	"time"

	"videostore-admin/internal/domain"
)

// Row mapping rules: optional columns scan through sql.Null* and come
// out as nil pointers, never as empty strings or zero stand-ins.
// Defaults for genuinely optional integer columns (language, rental
// duration) are applied in SQL via COALESCE so they are visible in the
// statement itself. Malformed decimals or timestamps are scan errors,
// not silent zeroes.

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func nullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}

func scanFilm(s rowScanner) (*domain.Film, error) {
	var f domain.Film
	var description, rating, features sql.NullString
	var releaseYear, length sql.NullInt64

	err := s.Scan(&f.ID, &f.Title, &description, &releaseYear, &f.LanguageID,
		&f.RentalDuration, &f.RentalRate, &length, &f.ReplacementCost, &rating, &features)
	if err != nil {
		return nil, err
	}

	f.Description = nullString(description)
	f.ReleaseYear = nullInt(releaseYear)
	f.Length = nullInt(length)
	f.Rating = nullString(rating)
	f.SpecialFeatures = nullString(features)
	return &f, nil
}

func scanCustomer(s rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	var email, address, district, city, postalCode, phone sql.NullString

	err := s.Scan(&c.ID, &c.StoreID, &c.FirstName, &c.LastName, &email,
		&c.AddressID, &c.Active, &address, &district, &city, &postalCode, &phone)
	if err != nil {
		return nil, err
	}

	c.Email = nullString(email)
	c.Address = nullString(address)
	c.District = nullString(district)
	c.City = nullString(city)
	c.PostalCode = nullString(postalCode)
	c.Phone = nullString(phone)
	return &c, nil
}

func scanStaff(s rowScanner) (*domain.Staff, error) {
	var st domain.Staff
	var email, address, district, city, phone sql.NullString

	err := s.Scan(&st.ID, &st.FirstName, &st.LastName, &email, &st.StoreID,
		&st.Active, &st.Username, &st.AddressID, &address, &district, &city, &phone)
	if err != nil {
		return nil, err
	}

	st.Email = nullString(email)
	st.Address = nullString(address)
	st.District = nullString(district)
	st.City = nullString(city)
	st.Phone = nullString(phone)
	return &st, nil
}

func scanRental(s rowScanner) (*domain.Rental, error) {
	var r domain.Rental
	var returned sql.NullTime
	var customerName, filmTitle, staffName sql.NullString

	err := s.Scan(&r.ID, &r.RentalDate, &returned, &r.InventoryID,
		&r.CustomerID, &r.StaffID, &customerName, &filmTitle, &staffName)
	if err != nil {
		return nil, err
	}

	r.ReturnedDate = nullTime(returned)
	r.CustomerName = nullString(customerName)
	r.FilmTitle = nullString(filmTitle)
	r.StaffName = nullString(staffName)
	return &r, nil
}
