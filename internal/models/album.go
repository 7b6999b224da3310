package models

import (
	"time"

	"gorm.io/gorm"
)

// Album is a purchasable release owned by exactly one artist.
type Album struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ArtistID    string    `json:"artist_id" gorm:"index;type:varchar(36)"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	CoverURL    string    `json:"cover_url" validate:"omitempty,max=500"`
	Price       float64   `json:"price" gorm:"type:decimal(15,2)" validate:"required,gt=0"`
	ReleaseDate time.Time `json:"release_date"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
