package models

import "gorm.io/gorm"

// Roles a user account can hold.
const (
	RoleUser   = "USER"
	RoleArtist = "ARTIST"
	RoleAdmin  = "ADMIN"
)

// User represents a marketplace account. Balance is debited and credited
// by album purchases and top-ups and never goes negative.
type User struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string  `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string  `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string  `json:"role" gorm:"type:varchar(16);default:USER"`
	Balance    float64 `json:"balance" gorm:"type:decimal(15,2);default:0"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
