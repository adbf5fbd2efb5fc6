package models

import "time"

// Platform roles. A user may hold several.
const (
	RoleClient = "client"
	RoleHost   = "host"
	RoleAdmin  = "admin"
)

// User represents a registered profile (client, host or admin).
type User struct {
	ID           string    `bson:"id" json:"id"`   // Unique user identifier (UUID)
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"` // bcrypt hash, never serialized
	Roles        []string  `bson:"roles" json:"roles"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"` // SHA-256 of the active bearer token
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
