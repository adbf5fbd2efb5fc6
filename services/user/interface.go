package user

import "venuehub/models"

// UserService manages registration, authentication and role lookups.
type UserService interface {
	Register(email, name, password string) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	RevokeToken(id string) error
}
