package repositories

import "gorm.io/gorm"

// NewGORMRepositories builds a repository bundle bound to the given GORM
// handle. The handle may be a root *gorm.DB or a transaction.
func NewGORMRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewGORMUserRepository(db),
		Artists:       NewGORMArtistRepository(db),
		Albums:        NewGORMAlbumRepository(db),
		Tracks:        NewGORMTrackRepository(db),
		Tags:          NewGORMTagRepository(db),
		AlbumTags:     NewGORMAlbumTagRepository(db),
		Reviews:       NewGORMReviewRepository(db),
		Purchases:     NewGORMPurchaseRepository(db),
		Subscriptions: NewGORMSubscriptionRepository(db),
	}
}

// GORMTxManager is a GORM implementation of TxManager. Each Do call opens a
// database transaction and rebinds the repository bundle to it, so every
// repository operation inside fn commits or rolls back as one unit.
type GORMTxManager struct {
	db *gorm.DB
}

// NewGORMTxManager creates a new instance of GORMTxManager.
func NewGORMTxManager(db *gorm.DB) *GORMTxManager {
	return &GORMTxManager{
		db: db,
	}
}

// Do runs fn inside a single database transaction. The error from fn is
// returned as-is so domain errors keep their kind across the rollback.
func (m *GORMTxManager) Do(fn func(r *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMRepositories(tx))
	})
}
