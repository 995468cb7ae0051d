package model

import "time"

// Comment supports one level of reply nesting via ParentNo. Rows are
// soft-deleted so replies keep a resolvable parent reference.
type Comment struct {
	No        uint      `gorm:"primaryKey" json:"no"`
	ShortsNo  uint      `gorm:"not null;index" json:"shorts_no"`
	Shorts    Shorts    `gorm:"foreignKey:ShortsNo;constraint:OnDelete:CASCADE" json:"-"`
	UserNo    uint      `gorm:"not null;index" json:"user_no"`
	User      User      `gorm:"foreignKey:UserNo;references:No;constraint:OnDelete:CASCADE" json:"-"`
	ParentNo  *uint     `gorm:"index" json:"parent_no,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
