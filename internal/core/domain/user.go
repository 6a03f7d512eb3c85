package domain

import "time"

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the persisted account entity. Email is stored lowercased and is
// unique across the collection. PasswordHash is a bcrypt hash; the raw
// password never leaves the registration and login paths.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the resolved identity of a caller for the duration of one
// request. Role and Email always come from the current persisted record,
// never from token claims.
type Principal struct {
	ID    string
	Email string
	Role  Role
}
