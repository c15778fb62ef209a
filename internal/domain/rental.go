package domain

import "time"

// Rental is a rental row with display names resolved via join. A nil
// ReturnedDate means the item is still checked out.
type Rental struct {
	ID           int        `json:"id"`
	RentalDate   time.Time  `json:"rental_date"`
	ReturnedDate *time.Time `json:"returned_date,omitempty"`
	InventoryID  int        `json:"inventory_id"`
	CustomerID   int        `json:"customer_id"`
	StaffID      int        `json:"staff_id"`

	CustomerName *string `json:"customer_name,omitempty"`
	FilmTitle    *string `json:"film_title,omitempty"`
	StaffName    *string `json:"staff_name,omitempty"`
}

// IsActive reports whether the rental is still open. It holds exactly
// when ReturnedDate is absent.
func (r *Rental) IsActive() bool {
	return r.ReturnedDate == nil
}

// InventoryItem is one physical copy of a film. Available is derived
// at read time: true iff no open rental references this copy.
type InventoryItem struct {
	ID        int    `json:"id"`
	StoreID   int    `json:"store_id"`
	FilmTitle string `json:"film_title"`
	Available bool   `json:"available"`
}
