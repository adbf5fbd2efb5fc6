package space

import "venuehub/models"

// SpaceService manages host-owned space listings.
type SpaceService interface {
	Create(host *models.User, input models.Space) (*models.Space, error)
	Update(host *models.User, id string, input models.Space) (*models.Space, error)
	Delete(host *models.User, id string) error
	Get(id string) (*models.Space, error)
	List() ([]models.Space, error)
	ListByHost(hostID string) ([]models.Space, error)
	SetAvailability(host *models.User, id string, dates []string) error
}
