package models

import "time"

// Artist is the public profile a user publishes albums under.
// A user owns at most one artist profile. Rows are hard-deleted: a
// soft-deleted row would still occupy the unique index on user_id and
// block re-creating a profile for the same user.
type Artist struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Bio       string    `json:"bio" validate:"omitempty,max=2000"`
	PhotoURL  string    `json:"photo_url" validate:"omitempty,max=500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
