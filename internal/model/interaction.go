package model

import "time"

// Join records express "user U has an active like/save on target T". One row
// per (user, target) pair, reused across toggle cycles via IsDeleted — a
// toggle never inserts a duplicate.

type ShortsLike struct {
	No        uint      `gorm:"primaryKey" json:"no"`
	UserNo    uint      `gorm:"not null;uniqueIndex:idx_shorts_likes_user_target,priority:1" json:"user_no"`
	ShortsNo  uint      `gorm:"not null;uniqueIndex:idx_shorts_likes_user_target,priority:2" json:"shorts_no"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ShortsSave struct {
	No        uint      `gorm:"primaryKey" json:"no"`
	UserNo    uint      `gorm:"not null;uniqueIndex:idx_shorts_saves_user_target,priority:1" json:"user_no"`
	ShortsNo  uint      `gorm:"not null;uniqueIndex:idx_shorts_saves_user_target,priority:2" json:"shorts_no"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CommentLike struct {
	No        uint      `gorm:"primaryKey" json:"no"`
	UserNo    uint      `gorm:"not null;uniqueIndex:idx_comment_likes_user_target,priority:1" json:"user_no"`
	CommentNo uint      `gorm:"not null;uniqueIndex:idx_comment_likes_user_target,priority:2" json:"comment_no"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
