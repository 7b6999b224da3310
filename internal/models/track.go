package models

import "gorm.io/gorm"

// Track belongs to exactly one album. Position is 1-based and kept
// contiguous within the album; the renumbering on insert/remove/move
// happens in the album service inside one transaction. There is
// deliberately no unique index on (album_id, position): the row-by-row
// shifts during a move would trip it mid-transaction.
type Track struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	AlbumID     string `json:"album_id" gorm:"index;type:varchar(36)"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	DurationSec int    `json:"duration_sec" validate:"gte=0"`
	Position    int    `json:"position"`
	AudioURL    string `json:"audio_url" validate:"omitempty,max=500"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
