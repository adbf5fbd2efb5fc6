package spaceRepo

import (
	"venuehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SpaceRepository defines data access for spaces.
type SpaceRepository interface {
	Create(space *models.Space) error
	Update(space *models.Space) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Space, error)
	GetAll() ([]models.Space, error)
	GetByHost(hostID string) ([]models.Space, error)
	SetAvailableDates(id string, dates []string) error
}
