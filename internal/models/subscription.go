package models

import "time"

// Subscription records one user following one artist. The pair is unique;
// rows are hard-deleted on unsubscribe so a later resubscribe creates a
// fresh row with a new timestamp.
type Subscription struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_user_artist;type:varchar(36)"`
	ArtistID  string    `json:"artist_id" gorm:"uniqueIndex:idx_user_artist;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}
