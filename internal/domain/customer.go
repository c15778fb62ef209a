package domain

// Customer carries the customer row plus display-only address fields
// copied via join at read time. The address fields are never written
// back through this struct.
type Customer struct {
	ID        int     `json:"id"`
	StoreID   int     `json:"store_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
	AddressID int     `json:"address_id"`
	Active    bool    `json:"active"`

	Address    *string `json:"address,omitempty"`
	District   *string `json:"district,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

// NewCustomer is the input for customer creation. The address fields
// become a fresh address row; the customer row then references its
// generated identity.
type NewCustomer struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	StoreID    int    `json:"store_id"`
	Address    string `json:"address"`
	District   string `json:"district"`
	CityID     int    `json:"city_id"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
