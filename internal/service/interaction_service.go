package service

import (
	"context"
	"time"

	"novelshorts/internal/dto"
	"novelshorts/internal/repository"
)

// InteractionService fronts the toggle ledger. The transactional work lives
// in the repository; this layer adds operation events and response shaping.
type InteractionService interface {
	LikeShorts(ctx context.Context, userNo, shortsNo uint) (*dto.LikeResponse, error)
	UnlikeShorts(ctx context.Context, userNo, shortsNo uint) (*dto.LikeResponse, error)
	SaveShorts(ctx context.Context, userNo, shortsNo uint) (*dto.SaveResponse, error)
	UnsaveShorts(ctx context.Context, userNo, shortsNo uint) (*dto.SaveResponse, error)
	LikeComment(ctx context.Context, userNo, commentNo uint) (*dto.LikeResponse, error)
	UnlikeComment(ctx context.Context, userNo, commentNo uint) (*dto.LikeResponse, error)
}

type interactionService struct {
	repo     repository.InteractionRepository
	observer Observer
}

func NewInteractionService(repo repository.InteractionRepository, observer Observer) InteractionService {
	return &interactionService{repo: repo, observer: observer}
}

func (s *interactionService) LikeShorts(ctx context.Context, userNo, shortsNo uint) (resp *dto.LikeResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "shorts.like", start, err) }()

	count, err := s.repo.LikeShorts(ctx, userNo, shortsNo)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{LikeCount: count}, nil
}

func (s *interactionService) UnlikeShorts(ctx context.Context, userNo, shortsNo uint) (resp *dto.LikeResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "shorts.unlike", start, err) }()

	count, err := s.repo.UnlikeShorts(ctx, userNo, shortsNo)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{LikeCount: count}, nil
}

func (s *interactionService) SaveShorts(ctx context.Context, userNo, shortsNo uint) (resp *dto.SaveResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "shorts.save", start, err) }()

	count, err := s.repo.SaveShorts(ctx, userNo, shortsNo)
	if err != nil {
		return nil, err
	}
	return &dto.SaveResponse{SaveCount: count}, nil
}

func (s *interactionService) UnsaveShorts(ctx context.Context, userNo, shortsNo uint) (resp *dto.SaveResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "shorts.unsave", start, err) }()

	count, err := s.repo.UnsaveShorts(ctx, userNo, shortsNo)
	if err != nil {
		return nil, err
	}
	return &dto.SaveResponse{SaveCount: count}, nil
}

func (s *interactionService) LikeComment(ctx context.Context, userNo, commentNo uint) (resp *dto.LikeResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "comment.like", start, err) }()

	count, err := s.repo.LikeComment(ctx, userNo, commentNo)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{LikeCount: count}, nil
}

func (s *interactionService) UnlikeComment(ctx context.Context, userNo, commentNo uint) (resp *dto.LikeResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "comment.unlike", start, err) }()

	count, err := s.repo.UnlikeComment(ctx, userNo, commentNo)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{LikeCount: count}, nil
}
