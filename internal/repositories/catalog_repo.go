package repositories

import "musicstore/internal/models"

// TagRepository defines the interface for tag data access.
type TagRepository interface {
	GetAll() ([]models.Tag, error)
	GetByID(id string) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	Create(tag *models.Tag) error
	Delete(id string) error
}

// AlbumTagRepository defines the interface for album-tag link data access.
type AlbumTagRepository interface {
	GetByAlbumID(albumID string) ([]models.AlbumTag, error)
	GetByAlbumAndTag(albumID, tagID string) (*models.AlbumTag, error)
	Create(albumTag *models.AlbumTag) error
	Delete(id string) error
	DeleteByTagID(tagID string) error
}

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetByID(id string) (*models.Review, error)
	GetByAlbumID(albumID string) ([]models.Review, error)
	GetByUserID(userID string) ([]models.Review, error)
	Create(review *models.Review) error
	Delete(id string) error
}

// PurchaseRepository defines the interface for purchase record data access.
type PurchaseRepository interface {
	GetByUserID(userID string) ([]models.Purchase, error)
	GetByUserAndAlbum(userID, albumID string) (*models.Purchase, error)
	Create(purchase *models.Purchase) error
}

// SubscriptionRepository defines the interface for subscription data access.
type SubscriptionRepository interface {
	GetByUserID(userID string) ([]models.Subscription, error)
	GetByArtistID(artistID string) ([]models.Subscription, error)
	GetByUserAndArtist(userID, artistID string) (*models.Subscription, error)
	ExistsByUserAndArtist(userID, artistID string) (bool, error)
	Create(subscription *models.Subscription) error
	Delete(id string) error
}
