package domain

import "time"

// User is a back-office account (finance, supply, HR staff). Suppliers are a
// separate population with their own table and session tokens.
type User struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedOn    time.Time `json:"created_on"`
}

// Supplier is an external vendor account that bids on public supply requests.
type Supplier struct {
	ID           int32     `json:"id"`
	CompanyName  string    `json:"company_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
