package models

import "time"

// Tag is a named label shared across albums. Rows are hard-deleted: a
// soft-deleted row would still occupy the unique index on name and block
// re-creating a tag with the same name.
type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"created_at"`
}

// AlbumTag links one album to one tag. The composite unique index keeps
// the pair unique; rows are hard-deleted so a removed tag can be
// reattached later.
type AlbumTag struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AlbumID   string    `json:"album_id" gorm:"uniqueIndex:idx_album_tag;type:varchar(36)"`
	TagID     string    `json:"tag_id" gorm:"uniqueIndex:idx_album_tag;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}
