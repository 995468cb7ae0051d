package dto

import "time"

type ActivityInput struct {
	NovelNo      *uint      `json:"novel_no,omitempty"`
	CommentNo    *uint      `json:"comment_no,omitempty"`
	ActivityType int16      `json:"activity_type" binding:"required"`
	ActedAt      *time.Time `json:"acted_at,omitempty"`
}
