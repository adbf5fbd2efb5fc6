package userRepo

import "venuehub/models"

// UserRepository defines data access for user profiles and roles.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(hash string) (*models.User, error)
	SetTokenHash(id string, hash string) error
	AddRole(id string, role string) error
}
