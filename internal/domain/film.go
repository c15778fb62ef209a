package domain

import "github.com/shopspring/decimal"

// Film is a single row from the film table. Money columns are exact
// decimals; they round-trip through their string encoding unchanged.
type Film struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	ReleaseYear     *int            `json:"release_year,omitempty"`
	LanguageID      int             `json:"language_id"`
	RentalDuration  int             `json:"rental_duration"`
	RentalRate      decimal.Decimal `json:"rental_rate"`
	Length          *int            `json:"length,omitempty"`
	ReplacementCost decimal.Decimal `json:"replacement_cost"`
	Rating          *string         `json:"rating,omitempty"`
	SpecialFeatures *string         `json:"special_features,omitempty"`
}

type Actor struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StoreInventory summarizes how many copies of a film a store holds and
// how many of those are not currently checked out.
type StoreInventory struct {
	StoreID        int `json:"store_id"`
	TotalCount     int `json:"total_count"`
	AvailableCount int `json:"available_count"`
}

// FilmDetail bundles a film with its join-resolved relations. It is
// assembled per request and never cached.
type FilmDetail struct {
	Film             Film             `json:"film"`
	Actors           []Actor          `json:"actors"`
	Categories       []Category       `json:"categories"`
	InventoryByStore []StoreInventory `json:"inventory_by_store"`
}

// FilmFilter holds the optional film search criteria. Empty fields are
// skipped; supplied ones are combined with AND in a fixed order
// (title, category, rating).
type FilmFilter struct {
	Search   string
	Category string
	Rating   string
}
