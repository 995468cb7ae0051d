package model

import "time"

type Novel struct {
	No                 uint       `gorm:"primaryKey" json:"no"`
	SourcePlatformType int16      `gorm:"not null;index:idx_novels_source,priority:1" json:"source_platform_type"`
	SourceID           int        `gorm:"not null;index:idx_novels_source,priority:2" json:"source_id"`
	SourceURL          string     `gorm:"type:text" json:"source_url"`
	Title              string     `gorm:"size:50;not null" json:"title"`
	Author             string     `gorm:"size:50;not null" json:"author"`
	Description        string     `gorm:"type:text" json:"description"`
	CoverImage         string     `gorm:"type:text" json:"cover_image"`
	Chapters           int        `gorm:"default:0" json:"chapters"`
	Views              int        `gorm:"default:0" json:"views"`
	Recommends         int        `gorm:"default:0" json:"recommends"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastUploadedAt     *time.Time `json:"last_uploaded_at,omitempty"`
}
