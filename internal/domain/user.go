package domain

import "time"

// User represents an admin account. Accounts are created only through
// first-run bootstrap seeding; there is no user management API.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the claim set embedded in a session credential.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// DefaultRole is assigned to seeded accounts.
const DefaultRole = "admin"
