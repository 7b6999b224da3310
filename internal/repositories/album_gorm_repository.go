package repositories

import (
	"fmt"

	"musicstore/internal/apperrors"
	"musicstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAlbumRepository is a GORM implementation of AlbumRepository.
type GORMAlbumRepository struct {
	db *gorm.DB
}

// NewGORMAlbumRepository creates a new instance of GORMAlbumRepository.
func NewGORMAlbumRepository(db *gorm.DB) *GORMAlbumRepository {
	return &GORMAlbumRepository{
		db: db,
	}
}

// GetAll retrieves all albums from the database.
func (r *GORMAlbumRepository) GetAll() ([]models.Album, error) {
	var albums []models.Album
	if err := r.db.Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to get all albums: %w", err)
	}
	return albums, nil
}

// GetByID retrieves an album by its ID from the database.
func (r *GORMAlbumRepository) GetByID(id string) (*models.Album, error) {
	var album models.Album
	if err := r.db.First(&album, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("album_not_found", fmt.Sprintf("album with ID %s not found", id))
		}
		return nil, fmt.Errorf("failed to get album by ID %s: %w", id, err)
	}
	return &album, nil
}

// GetByArtistID retrieves all albums owned by the given artist.
func (r *GORMAlbumRepository) GetByArtistID(artistID string) ([]models.Album, error) {
	var albums []models.Album
	if err := r.db.Where("artist_id = ?", artistID).Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to get albums by artist ID %s: %w", artistID, err)
	}
	return albums, nil
}

// Create creates a new album in the database.
func (r *GORMAlbumRepository) Create(album *models.Album) error {
	if album.ID == "" {
		album.ID = uuid.New().String()
	}
	if err := r.db.Create(album).Error; err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}
	return nil
}

// Update updates an existing album in the database.
func (r *GORMAlbumRepository) Update(album *models.Album) error {
	res := r.db.Save(album)
	if res.Error != nil {
		return fmt.Errorf("failed to update album: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("album_not_found", fmt.Sprintf("album with ID %s not found for update", album.ID))
	}
	return nil
}

// Delete deletes an album by its ID from the database.
func (r *GORMAlbumRepository) Delete(id string) error {
	res := r.db.Delete(&models.Album{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete album: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("album_not_found", fmt.Sprintf("album with ID %s not found for deletion", id))
	}
	return nil
}

// GORMTrackRepository is a GORM implementation of TrackRepository.
type GORMTrackRepository struct {
	db *gorm.DB
}

// NewGORMTrackRepository creates a new instance of GORMTrackRepository.
func NewGORMTrackRepository(db *gorm.DB) *GORMTrackRepository {
	return &GORMTrackRepository{
		db: db,
	}
}

// GetByAlbumID retrieves the album's tracks sorted ascending by position.
func (r *GORMTrackRepository) GetByAlbumID(albumID string) ([]models.Track, error) {
	var tracks []models.Track
	if err := r.db.Where("album_id = ?", albumID).Order("position asc").Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("failed to get tracks by album ID %s: %w", albumID, err)
	}
	return tracks, nil
}

// GetByAlbumIDAndPosition retrieves the track occupying the given position.
func (r *GORMTrackRepository) GetByAlbumIDAndPosition(albumID string, position int) (*models.Track, error) {
	var track models.Track
	if err := r.db.First(&track, "album_id = ? AND position = ?", albumID, position).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("track_not_found", fmt.Sprintf("track at position %d not found", position))
		}
		return nil, fmt.Errorf("failed to get track at position %d for album %s: %w", position, albumID, err)
	}
	return &track, nil
}

// CountByAlbumID returns the number of tracks on the album.
func (r *GORMTrackRepository) CountByAlbumID(albumID string) (int, error) {
	var count int64
	if err := r.db.Model(&models.Track{}).Where("album_id = ?", albumID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tracks by album ID %s: %w", albumID, err)
	}
	return int(count), nil
}

// Create creates a new track in the database.
func (r *GORMTrackRepository) Create(track *models.Track) error {
	if track.ID == "" {
		track.ID = uuid.New().String()
	}
	if err := r.db.Create(track).Error; err != nil {
		return fmt.Errorf("failed to create track: %w", err)
	}
	return nil
}

// Update updates an existing track in the database.
func (r *GORMTrackRepository) Update(track *models.Track) error {
	res := r.db.Save(track)
	if res.Error != nil {
		return fmt.Errorf("failed to update track: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("track_not_found", fmt.Sprintf("track with ID %s not found for update", track.ID))
	}
	return nil
}

// Delete deletes a track by its ID from the database.
func (r *GORMTrackRepository) Delete(id string) error {
	res := r.db.Delete(&models.Track{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete track: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("track_not_found", fmt.Sprintf("track with ID %s not found for deletion", id))
	}
	return nil
}

// DeleteByAlbumID deletes every track belonging to the given album.
func (r *GORMTrackRepository) DeleteByAlbumID(albumID string) error {
	if err := r.db.Delete(&models.Track{}, "album_id = ?", albumID).Error; err != nil {
		return fmt.Errorf("failed to delete tracks by album ID %s: %w", albumID, err)
	}
	return nil
}
