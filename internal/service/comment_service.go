package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"novelshorts/internal/dto"
	"novelshorts/internal/model"
	"novelshorts/internal/repository"
	"novelshorts/pkg/apperror"

	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
)

var ErrEmptyBody = fmt.Errorf("%w: comment content must not be empty", apperror.ErrInvalidInput)

const commentRateLimitAction = "create_comment"

type CommentService interface {
	ListComments(ctx context.Context, shortsNo uint) ([]dto.CommentView, error)
	CreateComment(ctx context.Context, userNo, shortsNo uint, input dto.CreateCommentInput) (*dto.CommentView, error)
	UpdateComment(ctx context.Context, userNo, commentNo uint, input dto.UpdateCommentInput) error
	DeleteComment(ctx context.Context, userNo, commentNo uint) error
	// GetComment resolves soft-deleted comments too; listing is the only
	// place deletion hides a row.
	GetComment(ctx context.Context, commentNo uint) (*model.Comment, error)
}

type commentService struct {
	repo        repository.CommentRepository
	redisClient *redis.Client
	rateLimit   time.Duration
	sanitizer   *bluemonday.Policy
	observer    Observer
}

func NewCommentService(repo repository.CommentRepository, redisClient *redis.Client, rateLimit time.Duration, observer Observer) CommentService {
	return &commentService{
		repo:        repo,
		redisClient: redisClient,
		rateLimit:   rateLimit,
		sanitizer:   bluemonday.StrictPolicy(),
		observer:    observer,
	}
}

func (s *commentService) cleanContent(content string) (string, error) {
	cleaned := strings.TrimSpace(s.sanitizer.Sanitize(content))
	if cleaned == "" {
		return "", ErrEmptyBody
	}
	return cleaned, nil
}

func commentView(c *model.Comment) dto.CommentView {
	return dto.CommentView{
		No:        c.No,
		ShortsNo:  c.ShortsNo,
		UserNo:    c.UserNo,
		ParentNo:  c.ParentNo,
		Content:   c.Content,
		LikeCount: c.LikeCount,
		CreatedAt: c.CreatedAt,
	}
}

func (s *commentService) ListComments(ctx context.Context, shortsNo uint) (views []dto.CommentView, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "comment.list", start, err) }()

	comments, err := s.repo.ListByShorts(ctx, shortsNo)
	if err != nil {
		return nil, err
	}

	views = make([]dto.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, commentView(&comments[i]))
	}
	return views, nil
}

func (s *commentService) CreateComment(ctx context.Context, userNo, shortsNo uint, input dto.CreateCommentInput) (view *dto.CommentView, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "comment.create", start, err) }()

	content, err := s.cleanContent(input.Content)
	if err != nil {
		return nil, err
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, userNo, commentRateLimitAction, s.rateLimit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: commenting too fast", apperror.ErrRateLimitExceeded)
	}

	comment := model.Comment{
		ShortsNo: shortsNo,
		UserNo:   userNo,
		ParentNo: input.ParentNo,
		Content:  content,
	}

	if err = s.repo.Create(ctx, &comment); err != nil {
		// The slot was consumed by a request that changed nothing.
		_ = ClearRateLimit(ctx, s.redisClient, userNo, commentRateLimitAction)
		return nil, err
	}

	v := commentView(&comment)
	return &v, nil
}

func (s *commentService) UpdateComment(ctx context.Context, userNo, commentNo uint, input dto.UpdateCommentInput) (err error) {
	start := time.Now()
	defer func() { observe(s.observer, "comment.update", start, err) }()

	content, err := s.cleanContent(input.Content)
	if err != nil {
		return err
	}

	err = s.repo.Update(ctx, commentNo, userNo, content)
	return err
}

func (s *commentService) DeleteComment(ctx context.Context, userNo, commentNo uint) (err error) {
	start := time.Now()
	defer func() { observe(s.observer, "comment.delete", start, err) }()

	err = s.repo.SoftDelete(ctx, commentNo, userNo)
	return err
}

func (s *commentService) GetComment(ctx context.Context, commentNo uint) (*model.Comment, error) {
	return s.repo.FindByNo(ctx, commentNo)
}
