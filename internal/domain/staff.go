package domain

// Staff mirrors the staff table plus join-resolved address display
// fields.
type Staff struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
	StoreID   int     `json:"store_id"`
	Active    bool    `json:"active"`
	Username  string  `json:"username"`
	AddressID int     `json:"address_id"`

	Address  *string `json:"address,omitempty"`
	District *string `json:"district,omitempty"`
	City     *string `json:"city,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// NewStaff is the input for staff creation. Password is hashed before
// it reaches the repository; it is never stored or logged in clear.
type NewStaff struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	StoreID   int    `json:"store_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	AddressID int    `json:"address_id"`
}
