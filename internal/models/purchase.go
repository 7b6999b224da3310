package models

import "time"

// Purchase records one user buying one album at the price captured at
// purchase time. The composite unique index on (user_id, album_id) is the
// storage-level guard against two concurrent purchases of the same album
// both committing.
type Purchase struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_user_album;type:varchar(36)"`
	AlbumID     string    `json:"album_id" gorm:"uniqueIndex:idx_user_album;type:varchar(36)"`
	Amount      float64   `json:"amount" gorm:"type:decimal(15,2)"`
	PurchasedAt time.Time `json:"purchased_at"`
}
