package model

import "time"

// Shorts is a bite-sized excerpt of a Novel. The three counters are
// denormalized; only the interaction ledger and the comment flow touch them.
type Shorts struct {
	No           uint      `gorm:"primaryKey" json:"no"`
	NovelNo      uint      `gorm:"not null;index" json:"novel_no"`
	Novel        Novel     `gorm:"foreignKey:NovelNo;constraint:OnDelete:CASCADE" json:"-"`
	FormType     int16     `gorm:"not null;default:0" json:"form_type"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Image        string    `gorm:"type:text" json:"image"`
	Music        string    `gorm:"type:text" json:"music"`
	Views        int       `gorm:"not null;default:0" json:"views"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	SaveCount    int       `gorm:"not null;default:0" json:"save_count"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Shorts) TableName() string {
	return "novel_shorts"
}
