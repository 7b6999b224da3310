package repositories

import "musicstore/internal/models"

// ArtistRepository defines the interface for artist profile data access.
type ArtistRepository interface {
	GetAll() ([]models.Artist, error)
	GetByID(id string) (*models.Artist, error)
	GetByUserID(userID string) (*models.Artist, error)
	ExistsByUserID(userID string) (bool, error)
	Create(artist *models.Artist) error
	Update(artist *models.Artist) error
	Delete(id string) error
}
