package service

import (
	"context"
	"time"

	"novelshorts/internal/dto"
	"novelshorts/internal/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// CatalogService composes novels, shorts and their counters into read views.
// It is the only consumer of the counters the ledger maintains.
type CatalogService interface {
	// GetShorts increments the view counter as a side effect. When viewer is
	// set, the response carries the viewer's active like/save state.
	GetShorts(ctx context.Context, shortsNo uint, viewer *dto.Identity) (*dto.ShortsView, error)
	ListShorts(ctx context.Context, limit, offset int, viewer *dto.Identity) ([]dto.ShortsView, error)
	GetNovelDetail(ctx context.Context, novelNo uint) (*dto.NovelDetailView, error)
}

type catalogService struct {
	shortsRepo      repository.ShortsRepository
	novelRepo       repository.NovelRepository
	commentRepo     repository.CommentRepository
	interactionRepo repository.InteractionRepository
	observer        Observer
}

func NewCatalogService(
	shortsRepo repository.ShortsRepository,
	novelRepo repository.NovelRepository,
	commentRepo repository.CommentRepository,
	interactionRepo repository.InteractionRepository,
	observer Observer,
) CatalogService {
	return &catalogService{
		shortsRepo:      shortsRepo,
		novelRepo:       novelRepo,
		commentRepo:     commentRepo,
		interactionRepo: interactionRepo,
		observer:        observer,
	}
}

func (s *catalogService) attachViewerState(ctx context.Context, view *dto.ShortsView, viewer *dto.Identity) error {
	if viewer == nil {
		return nil
	}

	liked, err := s.interactionRepo.IsShortsLiked(ctx, viewer.UserNo, view.No)
	if err != nil {
		return err
	}
	saved, err := s.interactionRepo.IsShortsSaved(ctx, viewer.UserNo, view.No)
	if err != nil {
		return err
	}

	view.Liked = &liked
	view.Saved = &saved
	return nil
}

func (s *catalogService) GetShorts(ctx context.Context, shortsNo uint, viewer *dto.Identity) (view *dto.ShortsView, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "catalog.get_shorts", start, err) }()

	// Best effort: a failed view bump must not block the read.
	if incErr := s.shortsRepo.IncrementViews(ctx, shortsNo); incErr != nil {
		observe(s.observer, "catalog.increment_views", start, incErr)
	}

	view, err = s.shortsRepo.FindViewByNo(ctx, shortsNo)
	if err != nil {
		return nil, err
	}

	if err = s.attachViewerState(ctx, view, viewer); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *catalogService) ListShorts(ctx context.Context, limit, offset int, viewer *dto.Identity) (views []dto.ShortsView, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "catalog.list_shorts", start, err) }()

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	views, err = s.shortsRepo.ListViews(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	for i := range views {
		if err = s.attachViewerState(ctx, &views[i], viewer); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (s *catalogService) GetNovelDetail(ctx context.Context, novelNo uint) (detail *dto.NovelDetailView, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "catalog.get_novel_detail", start, err) }()

	novel, err := s.novelRepo.FindByNo(ctx, novelNo)
	if err != nil {
		return nil, err
	}

	shortsList, err := s.shortsRepo.ListByNovel(ctx, novelNo)
	if err != nil {
		return nil, err
	}

	withComments := make([]dto.ShortsWithComments, 0, len(shortsList))
	for i := range shortsList {
		sh := &shortsList[i]

		comments, err := s.commentRepo.ListByShorts(ctx, sh.No)
		if err != nil {
			return nil, err
		}

		commentViews := make([]dto.CommentView, 0, len(comments))
		for j := range comments {
			commentViews = append(commentViews, commentView(&comments[j]))
		}

		withComments = append(withComments, dto.ShortsWithComments{
			No:           sh.No,
			FormType:     sh.FormType,
			Content:      sh.Content,
			Image:        sh.Image,
			Music:        sh.Music,
			Views:        sh.Views,
			LikeCount:    sh.LikeCount,
			SaveCount:    sh.SaveCount,
			CommentCount: sh.CommentCount,
			Comments:     commentViews,
		})
	}

	return &dto.NovelDetailView{
		No:                 novel.No,
		SourcePlatformType: novel.SourcePlatformType,
		SourceURL:          novel.SourceURL,
		Title:              novel.Title,
		Author:             novel.Author,
		Description:        novel.Description,
		CoverImage:         novel.CoverImage,
		Chapters:           novel.Chapters,
		Views:              novel.Views,
		Recommends:         novel.Recommends,
		CreatedAt:          novel.CreatedAt,
		LastUploadedAt:     novel.LastUploadedAt,
		ShortsList:         withComments,
	}, nil
}
