package models

import (
	"gorm.io/gorm"
)

// User is a registered account. Only credentials live here; the health
// profile belongs to the live session and is never persisted.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
}
