package repositories

import (
	"fmt"
	"time"

	"musicstore/internal/apperrors"
	"musicstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{db: db}
}

// GetAll retrieves all tags from the database.
func (r *GORMTagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tags: %w", err)
	}
	return tags, nil
}

// GetByID retrieves a tag by its ID from the database.
func (r *GORMTagRepository) GetByID(id string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("tag_not_found", fmt.Sprintf("tag with ID %s not found", id))
		}
		return nil, fmt.Errorf("failed to get tag by ID %s: %w", id, err)
	}
	return &tag, nil
}

// GetByName retrieves a tag by its name from the database.
func (r *GORMTagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("tag_not_found", fmt.Sprintf("tag with name %s not found", name))
		}
		return nil, fmt.Errorf("failed to get tag by name %s: %w", name, err)
	}
	return &tag, nil
}

// Create creates a new tag in the database.
func (r *GORMTagRepository) Create(tag *models.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// Delete deletes a tag by its ID from the database.
func (r *GORMTagRepository) Delete(id string) error {
	res := r.db.Delete(&models.Tag{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("tag_not_found", fmt.Sprintf("tag with ID %s not found for deletion", id))
	}
	return nil
}

// GORMAlbumTagRepository is a GORM implementation of AlbumTagRepository.
type GORMAlbumTagRepository struct {
	db *gorm.DB
}

// NewGORMAlbumTagRepository creates a new instance of GORMAlbumTagRepository.
func NewGORMAlbumTagRepository(db *gorm.DB) *GORMAlbumTagRepository {
	return &GORMAlbumTagRepository{db: db}
}

// GetByAlbumID retrieves all tag links for the given album.
func (r *GORMAlbumTagRepository) GetByAlbumID(albumID string) ([]models.AlbumTag, error) {
	var links []models.AlbumTag
	if err := r.db.Where("album_id = ?", albumID).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to get album tags by album ID %s: %w", albumID, err)
	}
	return links, nil
}

// GetByAlbumAndTag retrieves the link row for the given (album, tag) pair.
func (r *GORMAlbumTagRepository) GetByAlbumAndTag(albumID, tagID string) (*models.AlbumTag, error) {
	var link models.AlbumTag
	if err := r.db.First(&link, "album_id = ? AND tag_id = ?", albumID, tagID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("album_tag_not_found", fmt.Sprintf("tag %s is not attached to album %s", tagID, albumID))
		}
		return nil, fmt.Errorf("failed to get album tag for album %s and tag %s: %w", albumID, tagID, err)
	}
	return &link, nil
}

// Create creates a new album-tag link in the database.
func (r *GORMAlbumTagRepository) Create(albumTag *models.AlbumTag) error {
	if albumTag.ID == "" {
		albumTag.ID = uuid.New().String()
	}
	if albumTag.CreatedAt.IsZero() {
		albumTag.CreatedAt = time.Now()
	}
	if err := r.db.Create(albumTag).Error; err != nil {
		return fmt.Errorf("failed to create album tag: %w", err)
	}
	return nil
}

// Delete deletes an album-tag link by its ID from the database.
func (r *GORMAlbumTagRepository) Delete(id string) error {
	res := r.db.Delete(&models.AlbumTag{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete album tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("album_tag_not_found", fmt.Sprintf("album tag with ID %s not found for deletion", id))
	}
	return nil
}

// DeleteByTagID deletes every link carrying the given tag.
func (r *GORMAlbumTagRepository) DeleteByTagID(tagID string) error {
	if err := r.db.Delete(&models.AlbumTag{}, "tag_id = ?", tagID).Error; err != nil {
		return fmt.Errorf("failed to delete album tags by tag ID %s: %w", tagID, err)
	}
	return nil
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// GetByID retrieves a review by its ID from the database.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("review_not_found", fmt.Sprintf("review with ID %s not found", id))
		}
		return nil, fmt.Errorf("failed to get review by ID %s: %w", id, err)
	}
	return &review, nil
}

// GetByAlbumID retrieves all reviews for the given album.
func (r *GORMReviewRepository) GetByAlbumID(albumID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("album_id = ?", albumID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews by album ID %s: %w", albumID, err)
	}
	return reviews, nil
}

// GetByUserID retrieves all reviews written by the given user.
func (r *GORMReviewRepository) GetByUserID(userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews by user ID %s: %w", userID, err)
	}
	return reviews, nil
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Delete deletes a review by its ID from the database.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("review_not_found", fmt.Sprintf("review with ID %s not found for deletion", id))
	}
	return nil
}

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{db: db}
}

// GetByUserID retrieves all purchases made by the given user.
func (r *GORMPurchaseRepository) GetByUserID(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.Where("user_id = ?", userID).Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get purchases by user ID %s: %w", userID, err)
	}
	return purchases, nil
}

// GetByUserAndAlbum retrieves the purchase for the given (user, album) pair.
func (r *GORMPurchaseRepository) GetByUserAndAlbum(userID, albumID string) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := r.db.First(&purchase, "user_id = ? AND album_id = ?", userID, albumID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("purchase_not_found", fmt.Sprintf("purchase for user %s and album %s not found", userID, albumID))
		}
		return nil, fmt.Errorf("failed to get purchase for user %s and album %s: %w", userID, albumID, err)
	}
	return &purchase, nil
}

// Create creates a new purchase record in the database. The composite
// unique index on (user_id, album_id) rejects concurrent duplicates.
func (r *GORMPurchaseRepository) Create(purchase *models.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	if purchase.PurchasedAt.IsZero() {
		purchase.PurchasedAt = time.Now()
	}
	if err := r.db.Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GORMSubscriptionRepository is a GORM implementation of SubscriptionRepository.
type GORMSubscriptionRepository struct {
	db *gorm.DB
}

// NewGORMSubscriptionRepository creates a new instance of GORMSubscriptionRepository.
func NewGORMSubscriptionRepository(db *gorm.DB) *GORMSubscriptionRepository {
	return &GORMSubscriptionRepository{db: db}
}

// GetByUserID retrieves all subscriptions held by the given user.
func (r *GORMSubscriptionRepository) GetByUserID(userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := r.db.Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to get subscriptions by user ID %s: %w", userID, err)
	}
	return subs, nil
}

// GetByArtistID retrieves all subscriptions to the given artist.
func (r *GORMSubscriptionRepository) GetByArtistID(artistID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := r.db.Where("artist_id = ?", artistID).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to get subscriptions by artist ID %s: %w", artistID, err)
	}
	return subs, nil
}

// GetByUserAndArtist retrieves the subscription for the given (user, artist) pair.
func (r *GORMSubscriptionRepository) GetByUserAndArtist(userID, artistID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.First(&sub, "user_id = ? AND artist_id = ?", userID, artistID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("subscription_not_found", "subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription for user %s and artist %s: %w", userID, artistID, err)
	}
	return &sub, nil
}

// ExistsByUserAndArtist reports whether the user is subscribed to the artist.
func (r *GORMSubscriptionRepository) ExistsByUserAndArtist(userID, artistID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Subscription{}).Where("user_id = ? AND artist_id = ?", userID, artistID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count subscriptions for user %s and artist %s: %w", userID, artistID, err)
	}
	return count > 0, nil
}

// Create creates a new subscription in the database.
func (r *GORMSubscriptionRepository) Create(subscription *models.Subscription) error {
	if subscription.ID == "" {
		subscription.ID = uuid.New().String()
	}
	if subscription.CreatedAt.IsZero() {
		subscription.CreatedAt = time.Now()
	}
	if err := r.db.Create(subscription).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// Delete deletes a subscription by its ID from the database.
func (r *GORMSubscriptionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Subscription{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("subscription_not_found", fmt.Sprintf("subscription with ID %s not found for deletion", id))
	}
	return nil
}
