package service

import (
	"context"
	"time"

	"novelshorts/internal/dto"
	"novelshorts/internal/model"
	"novelshorts/internal/repository"
)

type ActivityService interface {
	LogActivity(ctx context.Context, userNo uint, input dto.ActivityInput) error
}

type activityService struct {
	userRepo repository.UserRepository
	observer Observer
}

func NewActivityService(userRepo repository.UserRepository, observer Observer) ActivityService {
	return &activityService{userRepo: userRepo, observer: observer}
}

func (s *activityService) LogActivity(ctx context.Context, userNo uint, input dto.ActivityInput) (err error) {
	start := time.Now()
	defer func() { observe(s.observer, "activity.log", start, err) }()

	entry := model.UserActivityLog{
		UserNo:       userNo,
		NovelNo:      input.NovelNo,
		CommentNo:    input.CommentNo,
		ActivityType: input.ActivityType,
		ActedAt:      input.ActedAt,
	}
	err = s.userRepo.CreateActivityLog(ctx, &entry)
	return err
}
