package dto

import "time"

type CreateCommentInput struct {
	Content  string `json:"content" binding:"required"`
	ParentNo *uint  `json:"parent_no,omitempty"`
}

type UpdateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

type CommentView struct {
	No        uint      `json:"no"`
	ShortsNo  uint      `json:"shorts_no"`
	UserNo    uint      `json:"user_no"`
	ParentNo  *uint     `json:"parent_no,omitempty"`
	Content   string    `json:"content"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}
