package models

import "time"

// Review is free-text feedback left by a user on an album. A user may
// review the same album more than once.
type Review struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AlbumID        string    `json:"album_id" gorm:"index;type:varchar(36)"`
	UserID         string    `json:"user_id" gorm:"index;type:varchar(36)"`
	Text           string    `json:"text" validate:"required,min=1,max=5000"`
	FavoriteTracks string    `json:"favorite_tracks" validate:"omitempty,max=1000"`
	CreatedAt      time.Time `json:"created_at"`
}
