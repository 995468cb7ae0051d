package repository

import (
	"context"
	"fmt"

	"novelshorts/internal/model"
	"novelshorts/pkg/apperror"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = fmt.Errorf("%w: user does not exist", apperror.ErrNotFound)
	ErrUserExists   = fmt.Errorf("%w: id already taken", apperror.ErrConflict)
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	CreateActivityLog(ctx context.Context, entry *model.UserActivityLog) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUserExists
		}
		return tx.Create(user).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

func (r *userRepository) CreateActivityLog(ctx context.Context, entry *model.UserActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
