package model

import "time"

// UserActivityLog is an append-only record of user actions the client chooses
// to report (reads, recommendations, shares).
type UserActivityLog struct {
	No           uint       `gorm:"primaryKey" json:"no"`
	UserNo       uint       `gorm:"not null;index" json:"user_no"`
	NovelNo      *uint      `json:"novel_no,omitempty"`
	CommentNo    *uint      `json:"comment_no,omitempty"`
	ActivityType int16      `gorm:"not null" json:"activity_type"`
	ActedAt      *time.Time `json:"acted_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
