package dto

import "time"

type CreateNovelInput struct {
	SourcePlatformType int16      `json:"source_platform_type" binding:"required"`
	SourceID           int        `json:"source_id" binding:"required"`
	SourceURL          string     `json:"source_url" binding:"omitempty,url"`
	Title              string     `json:"title" binding:"required,max=50"`
	Author             string     `json:"author" binding:"required,max=50"`
	Description        string     `json:"description"`
	CoverImage         string     `json:"cover_image"`
	Chapters           int        `json:"chapters" binding:"omitempty,gte=0"`
	LastUploadedAt     *time.Time `json:"last_uploaded_at,omitempty"`
}

type NovelCreatedResponse struct {
	NovelNo uint `json:"novel_no"`
}

// CreateShortsInput arrives as multipart form data so image/music files can
// ride along; the handler forwards the files to blob storage and only the
// returned URLs reach the service.
type CreateShortsInput struct {
	NovelNo  uint   `form:"novel_no" binding:"required"`
	FormType int16  `form:"form_type"`
	Content  string `form:"content" binding:"required"`
}

type ShortsCreatedResponse struct {
	ShortsNo uint `json:"shorts_no"`
}
