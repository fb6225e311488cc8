package domain

import "time"

// User is a directory entry for a ledger account holder. The ledger
// core only asks whether a user exists; authentication is handled
// elsewhere and no credentials are stored here.
type User struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Name      string
	Email     string
}
