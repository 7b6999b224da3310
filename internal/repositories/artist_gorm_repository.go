package repositories

import (
	"fmt"

	"musicstore/internal/apperrors"
	"musicstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMArtistRepository is a GORM implementation of ArtistRepository.
type GORMArtistRepository struct {
	db *gorm.DB
}

// NewGORMArtistRepository creates a new instance of GORMArtistRepository.
func NewGORMArtistRepository(db *gorm.DB) *GORMArtistRepository {
	return &GORMArtistRepository{
		db: db,
	}
}

// GetAll retrieves all artist profiles from the database.
func (r *GORMArtistRepository) GetAll() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to get all artists: %w", err)
	}
	return artists, nil
}

// GetByID retrieves an artist profile by its ID from the database.
func (r *GORMArtistRepository) GetByID(id string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("artist_not_found", fmt.Sprintf("artist with ID %s not found", id))
		}
		return nil, fmt.Errorf("failed to get artist by ID %s: %w", id, err)
	}
	return &artist, nil
}

// GetByUserID retrieves the artist profile owned by the given user.
func (r *GORMArtistRepository) GetByUserID(userID string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("artist_not_found", fmt.Sprintf("artist profile for user %s not found", userID))
		}
		return nil, fmt.Errorf("failed to get artist by user ID %s: %w", userID, err)
	}
	return &artist, nil
}

// ExistsByUserID reports whether the given user already owns an artist profile.
func (r *GORMArtistRepository) ExistsByUserID(userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Artist{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count artists by user ID %s: %w", userID, err)
	}
	return count > 0, nil
}

// Create creates a new artist profile in the database.
func (r *GORMArtistRepository) Create(artist *models.Artist) error {
	if artist.ID == "" {
		artist.ID = uuid.New().String()
	}
	if err := r.db.Create(artist).Error; err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// Update updates an existing artist profile in the database.
func (r *GORMArtistRepository) Update(artist *models.Artist) error {
	res := r.db.Save(artist)
	if res.Error != nil {
		return fmt.Errorf("failed to update artist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("artist_not_found", fmt.Sprintf("artist with ID %s not found for update", artist.ID))
	}
	return nil
}

// Delete deletes an artist profile by its ID from the database.
func (r *GORMArtistRepository) Delete(id string) error {
	res := r.db.Delete(&models.Artist{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete artist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("artist_not_found", fmt.Sprintf("artist with ID %s not found for deletion", id))
	}
	return nil
}
