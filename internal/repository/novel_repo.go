package repository

import (
	"context"
	"fmt"

	"novelshorts/internal/model"
	"novelshorts/pkg/apperror"

	"gorm.io/gorm"
)

var ErrNovelExists = fmt.Errorf("%w: novel already exists", apperror.ErrConflict)

type NovelRepository interface {
	// Create rejects a novel whose (source platform, source id) pair is
	// already ingested.
	Create(ctx context.Context, novel *model.Novel) error
	FindByNo(ctx context.Context, novelNo uint) (*model.Novel, error)
	FindAll(ctx context.Context) ([]model.Novel, error)
}

type novelRepository struct {
	db *gorm.DB
}

func NewNovelRepository(db *gorm.DB) NovelRepository {
	return &novelRepository{db: db}
}

func (r *novelRepository) Create(ctx context.Context, novel *model.Novel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Novel{}).
			Where("source_platform_type = ? AND source_id = ?", novel.SourcePlatformType, novel.SourceID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrNovelExists
		}
		return tx.Create(novel).Error
	})
}

func (r *novelRepository) FindByNo(ctx context.Context, novelNo uint) (*model.Novel, error) {
	var novels []model.Novel
	if err := r.db.WithContext(ctx).
		Where("no = ?", novelNo).
		Limit(1).Find(&novels).Error; err != nil {
		return nil, err
	}
	if len(novels) == 0 {
		return nil, ErrNovelNotFound
	}
	return &novels[0], nil
}

func (r *novelRepository) FindAll(ctx context.Context) ([]model.Novel, error) {
	var novels []model.Novel
	if err := r.db.WithContext(ctx).Order("no ASC").Find(&novels).Error; err != nil {
		return nil, err
	}
	return novels, nil
}
