package repositories

import "musicstore/internal/models"

// AlbumRepository defines the interface for album data access.
type AlbumRepository interface {
	GetAll() ([]models.Album, error)
	GetByID(id string) (*models.Album, error)
	GetByArtistID(artistID string) ([]models.Album, error)
	Create(album *models.Album) error
	Update(album *models.Album) error
	Delete(id string) error
}

// TrackRepository defines the interface for track data access.
// GetByAlbumID returns tracks sorted ascending by position.
type TrackRepository interface {
	GetByAlbumID(albumID string) ([]models.Track, error)
	GetByAlbumIDAndPosition(albumID string, position int) (*models.Track, error)
	CountByAlbumID(albumID string) (int, error)
	Create(track *models.Track) error
	Update(track *models.Track) error
	Delete(id string) error
	DeleteByAlbumID(albumID string) error
}
