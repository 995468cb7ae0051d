package repository

import (
	"context"
	"fmt"

	"novelshorts/internal/dto"
	"novelshorts/internal/model"
	"novelshorts/pkg/apperror"

	"gorm.io/gorm"
)

var ErrNovelNotFound = fmt.Errorf("%w: novel does not exist", apperror.ErrNotFound)

const shortsViewColumns = `novel_shorts.no, novel_shorts.novel_no, novels.title, novels.author,
novels.description, novels.cover_image, novels.chapters, novels.recommends,
novels.source_platform_type, novels.source_url, novel_shorts.form_type,
novel_shorts.content, novel_shorts.image, novel_shorts.music, novel_shorts.views,
novel_shorts.like_count, novel_shorts.save_count, novel_shorts.comment_count,
novel_shorts.created_at`

type ShortsRepository interface {
	Create(ctx context.Context, shorts *model.Shorts) error
	FindViewByNo(ctx context.Context, shortsNo uint) (*dto.ShortsView, error)
	ListViews(ctx context.Context, limit, offset int) ([]dto.ShortsView, error)
	ListByNovel(ctx context.Context, novelNo uint) ([]model.Shorts, error)
	IncrementViews(ctx context.Context, shortsNo uint) error
}

type shortsRepository struct {
	db *gorm.DB
}

func NewShortsRepository(db *gorm.DB) ShortsRepository {
	return &shortsRepository{db: db}
}

func (r *shortsRepository) Create(ctx context.Context, shorts *model.Shorts) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Novel{}).Where("no = ?", shorts.NovelNo).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNovelNotFound
		}
		return tx.Create(shorts).Error
	})
}

func (r *shortsRepository) FindViewByNo(ctx context.Context, shortsNo uint) (*dto.ShortsView, error) {
	var view dto.ShortsView
	res := r.db.WithContext(ctx).
		Model(&model.Shorts{}).
		Select(shortsViewColumns).
		Joins("JOIN novels ON novels.no = novel_shorts.novel_no").
		Where("novel_shorts.no = ?", shortsNo).
		Scan(&view)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrShortsNotFound
	}
	return &view, nil
}

func (r *shortsRepository) ListViews(ctx context.Context, limit, offset int) ([]dto.ShortsView, error) {
	var views []dto.ShortsView
	err := r.db.WithContext(ctx).
		Model(&model.Shorts{}).
		Select(shortsViewColumns).
		Joins("JOIN novels ON novels.no = novel_shorts.novel_no").
		Order("novel_shorts.no DESC").
		Offset(offset).
		Limit(limit).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *shortsRepository) ListByNovel(ctx context.Context, novelNo uint) ([]model.Shorts, error) {
	var shorts []model.Shorts
	err := r.db.WithContext(ctx).
		Where("novel_no = ?", novelNo).
		Order("no DESC").
		Find(&shorts).Error
	if err != nil {
		return nil, err
	}
	return shorts, nil
}

func (r *shortsRepository) IncrementViews(ctx context.Context, shortsNo uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Shorts{}).
		Where("no = ?", shortsNo).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
