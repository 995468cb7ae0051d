package repository

import (
	"context"
	"fmt"

	"novelshorts/internal/model"
	"novelshorts/pkg/apperror"

	"gorm.io/gorm"
)

// Domain failures of the toggle ledger. All wrap an apperror sentinel so the
// dispatcher can map them with errors.Is.
var (
	ErrAlreadyLiked   = fmt.Errorf("%w: already liked", apperror.ErrConflict)
	ErrNotLiked       = fmt.Errorf("%w: not liked yet", apperror.ErrConflict)
	ErrAlreadySaved   = fmt.Errorf("%w: already saved", apperror.ErrConflict)
	ErrNotSaved       = fmt.Errorf("%w: not saved yet", apperror.ErrConflict)
	ErrShortsNotFound = fmt.Errorf("%w: shorts does not exist", apperror.ErrNotFound)
	ErrTargetComment  = fmt.Errorf("%w: comment does not exist", apperror.ErrNotFound)
)

// InteractionRepository keeps per-user toggle state and the denormalized
// counters on the target rows in sync. Every mutating call runs as a single
// transaction: existence check, join-record read/write, counter adjustment.
type InteractionRepository interface {
	LikeShorts(ctx context.Context, userNo, shortsNo uint) (int, error)
	UnlikeShorts(ctx context.Context, userNo, shortsNo uint) (int, error)
	SaveShorts(ctx context.Context, userNo, shortsNo uint) (int, error)
	UnsaveShorts(ctx context.Context, userNo, shortsNo uint) (int, error)
	LikeComment(ctx context.Context, userNo, commentNo uint) (int, error)
	UnlikeComment(ctx context.Context, userNo, commentNo uint) (int, error)
	IsShortsLiked(ctx context.Context, userNo, shortsNo uint) (bool, error)
	IsShortsSaved(ctx context.Context, userNo, shortsNo uint) (bool, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func shortsExists(tx *gorm.DB, shortsNo uint) error {
	var count int64
	if err := tx.Model(&model.Shorts{}).Where("no = ?", shortsNo).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrShortsNotFound
	}
	return nil
}

func commentExists(tx *gorm.DB, commentNo uint) error {
	var count int64
	if err := tx.Model(&model.Comment{}).
		Where("no = ? AND is_deleted = ?", commentNo, false).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrTargetComment
	}
	return nil
}

func shortsCounter(tx *gorm.DB, shortsNo uint, column string) (int, error) {
	var value int
	err := tx.Model(&model.Shorts{}).
		Select(column).
		Where("no = ?", shortsNo).
		Scan(&value).Error
	return value, err
}

func (r *interactionRepository) LikeShorts(ctx context.Context, userNo, shortsNo uint) (int, error) {
	var likeCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shortsExists(tx, shortsNo); err != nil {
			return err
		}

		// Look up the join record regardless of its soft-delete flag:
		// a toggled-off like is reactivated, never re-inserted.
		var records []model.ShortsLike
		if err := tx.Where("user_no = ? AND shorts_no = ?", userNo, shortsNo).
			Limit(1).Find(&records).Error; err != nil {
			return err
		}

		switch {
		case len(records) > 0 && !records[0].IsDeleted:
			return ErrAlreadyLiked
		case len(records) > 0:
			if err := tx.Model(&model.ShortsLike{}).
				Where("no = ?", records[0].No).
				Update("is_deleted", false).Error; err != nil {
				return err
			}
		default:
			record := model.ShortsLike{UserNo: userNo, ShortsNo: shortsNo}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Shorts{}).
			Where("no = ?", shortsNo).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
			return err
		}

		var err error
		likeCount, err = shortsCounter(tx, shortsNo, "like_count")
		return err
	})
	if err != nil {
		return 0, err
	}
	return likeCount, nil
}

func (r *interactionRepository) UnlikeShorts(ctx context.Context, userNo, shortsNo uint) (int, error) {
	var likeCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shortsExists(tx, shortsNo); err != nil {
			return err
		}

		res := tx.Model(&model.ShortsLike{}).
			Where("user_no = ? AND shorts_no = ? AND is_deleted = ?", userNo, shortsNo, false).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotLiked
		}

		// Floor at zero even if calls arrive out of order.
		if err := tx.Model(&model.Shorts{}).
			Where("no = ?", shortsNo).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - ?, 0)", 1)).Error; err != nil {
			return err
		}

		var err error
		likeCount, err = shortsCounter(tx, shortsNo, "like_count")
		return err
	})
	if err != nil {
		return 0, err
	}
	return likeCount, nil
}

func (r *interactionRepository) SaveShorts(ctx context.Context, userNo, shortsNo uint) (int, error) {
	var saveCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shortsExists(tx, shortsNo); err != nil {
			return err
		}

		var records []model.ShortsSave
		if err := tx.Where("user_no = ? AND shorts_no = ?", userNo, shortsNo).
			Limit(1).Find(&records).Error; err != nil {
			return err
		}

		switch {
		case len(records) > 0 && !records[0].IsDeleted:
			return ErrAlreadySaved
		case len(records) > 0:
			if err := tx.Model(&model.ShortsSave{}).
				Where("no = ?", records[0].No).
				Update("is_deleted", false).Error; err != nil {
				return err
			}
		default:
			record := model.ShortsSave{UserNo: userNo, ShortsNo: shortsNo}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Shorts{}).
			Where("no = ?", shortsNo).
			UpdateColumn("save_count", gorm.Expr("save_count + ?", 1)).Error; err != nil {
			return err
		}

		var err error
		saveCount, err = shortsCounter(tx, shortsNo, "save_count")
		return err
	})
	if err != nil {
		return 0, err
	}
	return saveCount, nil
}

func (r *interactionRepository) UnsaveShorts(ctx context.Context, userNo, shortsNo uint) (int, error) {
	var saveCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shortsExists(tx, shortsNo); err != nil {
			return err
		}

		res := tx.Model(&model.ShortsSave{}).
			Where("user_no = ? AND shorts_no = ? AND is_deleted = ?", userNo, shortsNo, false).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotSaved
		}

		if err := tx.Model(&model.Shorts{}).
			Where("no = ?", shortsNo).
			UpdateColumn("save_count", gorm.Expr("GREATEST(save_count - ?, 0)", 1)).Error; err != nil {
			return err
		}

		var err error
		saveCount, err = shortsCounter(tx, shortsNo, "save_count")
		return err
	})
	if err != nil {
		return 0, err
	}
	return saveCount, nil
}

func (r *interactionRepository) LikeComment(ctx context.Context, userNo, commentNo uint) (int, error) {
	var likeCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := commentExists(tx, commentNo); err != nil {
			return err
		}

		var records []model.CommentLike
		if err := tx.Where("user_no = ? AND comment_no = ?", userNo, commentNo).
			Limit(1).Find(&records).Error; err != nil {
			return err
		}

		switch {
		case len(records) > 0 && !records[0].IsDeleted:
			return ErrAlreadyLiked
		case len(records) > 0:
			if err := tx.Model(&model.CommentLike{}).
				Where("no = ?", records[0].No).
				Update("is_deleted", false).Error; err != nil {
				return err
			}
		default:
			record := model.CommentLike{UserNo: userNo, CommentNo: commentNo}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Comment{}).
			Where("no = ?", commentNo).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
			return err
		}

		return tx.Model(&model.Comment{}).
			Select("like_count").
			Where("no = ?", commentNo).
			Scan(&likeCount).Error
	})
	if err != nil {
		return 0, err
	}
	return likeCount, nil
}

func (r *interactionRepository) UnlikeComment(ctx context.Context, userNo, commentNo uint) (int, error) {
	var likeCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := commentExists(tx, commentNo); err != nil {
			return err
		}

		res := tx.Model(&model.CommentLike{}).
			Where("user_no = ? AND comment_no = ? AND is_deleted = ?", userNo, commentNo, false).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotLiked
		}

		if err := tx.Model(&model.Comment{}).
			Where("no = ?", commentNo).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - ?, 0)", 1)).Error; err != nil {
			return err
		}

		return tx.Model(&model.Comment{}).
			Select("like_count").
			Where("no = ?", commentNo).
			Scan(&likeCount).Error
	})
	if err != nil {
		return 0, err
	}
	return likeCount, nil
}

func (r *interactionRepository) IsShortsLiked(ctx context.Context, userNo, shortsNo uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShortsLike{}).
		Where("user_no = ? AND shorts_no = ? AND is_deleted = ?", userNo, shortsNo, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *interactionRepository) IsShortsSaved(ctx context.Context, userNo, shortsNo uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShortsSave{}).
		Where("user_no = ? AND shorts_no = ? AND is_deleted = ?", userNo, shortsNo, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
