package model

import "time"

// User carries two handles: No is the internal auto-assigned key, ID is the
// externally supplied login identifier.
type User struct {
	No           uint      `gorm:"primaryKey" json:"no"`
	ID           string    `gorm:"size:10;uniqueIndex;not null" json:"id"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Name         string    `gorm:"size:10;not null" json:"name"`
	Gender       string    `gorm:"size:1;not null;default:X" json:"gender"`
	Age          int16     `gorm:"not null;default:0" json:"age"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
