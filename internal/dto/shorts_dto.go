package dto

import "time"

// ShortsView composes a shorts row with its parent novel's metadata. Liked and
// Saved are only populated when the request carries a viewer identity.
type ShortsView struct {
	No                 uint       `json:"no"`
	NovelNo            uint       `json:"novel_no"`
	Title              string     `json:"title"`
	Author             string     `json:"author"`
	Description        string     `json:"description"`
	CoverImage         string     `json:"cover_image"`
	Chapters           int        `json:"chapters"`
	Recommends         int        `json:"recommends"`
	SourcePlatformType int16      `json:"source_platform_type"`
	SourceURL          string     `json:"source_url"`
	FormType           int16      `json:"form_type"`
	Content            string     `json:"content"`
	Image              string     `json:"image"`
	Music              string     `json:"music"`
	Views              int        `json:"views"`
	LikeCount          int        `json:"like_count"`
	SaveCount          int        `json:"save_count"`
	CommentCount       int        `json:"comment_count"`
	CreatedAt          time.Time  `json:"created_at"`
	Liked              *bool      `json:"liked,omitempty"`
	Saved              *bool      `json:"saved,omitempty"`
}

type LikeResponse struct {
	LikeCount int `json:"like_count"`
}

type SaveResponse struct {
	SaveCount int `json:"save_count"`
}

type NovelDetailView struct {
	No                 uint                 `json:"no"`
	SourcePlatformType int16                `json:"source_platform_type"`
	SourceURL          string               `json:"source_url"`
	Title              string               `json:"title"`
	Author             string               `json:"author"`
	Description        string               `json:"description"`
	CoverImage         string               `json:"cover_image"`
	Chapters           int                  `json:"chapters"`
	Views              int                  `json:"views"`
	Recommends         int                  `json:"recommends"`
	CreatedAt          time.Time            `json:"created_at"`
	LastUploadedAt     *time.Time           `json:"last_uploaded_at,omitempty"`
	ShortsList         []ShortsWithComments `json:"shorts_list"`
}

type ShortsWithComments struct {
	No           uint          `json:"no"`
	FormType     int16         `json:"form_type"`
	Content      string        `json:"content"`
	Image        string        `json:"image"`
	Music        string        `json:"music"`
	Views        int           `json:"views"`
	LikeCount    int           `json:"like_count"`
	SaveCount    int           `json:"save_count"`
	CommentCount int           `json:"comment_count"`
	Comments     []CommentView `json:"comments"`
}
