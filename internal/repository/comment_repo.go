package repository

import (
	"context"
	"fmt"

	"novelshorts/internal/model"
	"novelshorts/pkg/apperror"

	"gorm.io/gorm"
)

var (
	ErrParentNotFound  = fmt.Errorf("%w: parent comment does not exist", apperror.ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment does not exist", apperror.ErrNotFound)
)

type CommentRepository interface {
	// ListByShorts returns non-deleted comments oldest first.
	ListByShorts(ctx context.Context, shortsNo uint) ([]model.Comment, error)
	// Create inserts the comment and bumps the shorts' comment_count in one
	// transaction. Validates the shorts and, when set, the parent comment
	// (same shorts, not deleted).
	Create(ctx context.Context, comment *model.Comment) error
	// Update edits content; ownership and liveness are folded into the WHERE
	// so a non-owner cannot distinguish "not yours" from "not there".
	Update(ctx context.Context, commentNo, userNo uint, content string) error
	// SoftDelete flags the comment and decrements the shorts' comment_count
	// in one transaction, same combined ownership check as Update.
	SoftDelete(ctx context.Context, commentNo, userNo uint) error
	// FindByNo resolves a comment including soft-deleted rows.
	FindByNo(ctx context.Context, commentNo uint) (*model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListByShorts(ctx context.Context, shortsNo uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("shorts_no = ? AND is_deleted = ?", shortsNo, false).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shortsExists(tx, comment.ShortsNo); err != nil {
			return err
		}

		if comment.ParentNo != nil {
			var count int64
			if err := tx.Model(&model.Comment{}).
				Where("no = ? AND shorts_no = ? AND is_deleted = ?", *comment.ParentNo, comment.ShortsNo, false).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrParentNotFound
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		return tx.Model(&model.Shorts{}).
			Where("no = ?", comment.ShortsNo).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	})
}

func (r *commentRepository) Update(ctx context.Context, commentNo, userNo uint, content string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("no = ? AND user_no = ? AND is_deleted = ?", commentNo, userNo, false).
		Update("content", content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, commentNo, userNo uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comments []model.Comment
		if err := tx.Where("no = ? AND user_no = ? AND is_deleted = ?", commentNo, userNo, false).
			Limit(1).Find(&comments).Error; err != nil {
			return err
		}
		if len(comments) == 0 {
			return ErrCommentNotFound
		}

		if err := tx.Model(&model.Comment{}).
			Where("no = ?", commentNo).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		return tx.Model(&model.Shorts{}).
			Where("no = ?", comments[0].ShortsNo).
			UpdateColumn("comment_count", gorm.Expr("GREATEST(comment_count - ?, 0)", 1)).Error
	})
}

func (r *commentRepository) FindByNo(ctx context.Context, commentNo uint) (*model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Where("no = ?", commentNo).
		Limit(1).Find(&comments).Error; err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrCommentNotFound
	}
	return &comments[0], nil
}
