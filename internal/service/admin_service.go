package service

import (
	"context"
	"encoding/csv"
	"io"
	"mime/multipart"
	"path"
	"strconv"
	"time"

	"novelshorts/internal/dto"
	"novelshorts/internal/model"
	"novelshorts/internal/repository"
	"novelshorts/pkg/storage"
)

// AdminService covers the ingestion surface: registering novels, attaching
// shorts with their media, and dumping the catalog for offline review.
type AdminService interface {
	CreateNovel(ctx context.Context, input dto.CreateNovelInput) (*dto.NovelCreatedResponse, error)
	CreateShorts(ctx context.Context, input dto.CreateShortsInput, image, music *multipart.FileHeader) (*dto.ShortsCreatedResponse, error)
	ExportNovelsCSV(ctx context.Context, w io.Writer) error
}

type adminService struct {
	novelRepo    repository.NovelRepository
	shortsRepo   repository.ShortsRepository
	media        storage.MediaStorage
	search       SearchService
	uploadFolder string
	observer     Observer
}

func NewAdminService(
	novelRepo repository.NovelRepository,
	shortsRepo repository.ShortsRepository,
	media storage.MediaStorage,
	search SearchService,
	uploadFolder string,
	observer Observer,
) AdminService {
	return &adminService{
		novelRepo:    novelRepo,
		shortsRepo:   shortsRepo,
		media:        media,
		search:       search,
		uploadFolder: uploadFolder,
		observer:     observer,
	}
}

func (s *adminService) CreateNovel(ctx context.Context, input dto.CreateNovelInput) (resp *dto.NovelCreatedResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "admin.create_novel", start, err) }()

	novel := model.Novel{
		SourcePlatformType: input.SourcePlatformType,
		SourceID:           input.SourceID,
		SourceURL:          input.SourceURL,
		Title:              input.Title,
		Author:             input.Author,
		Description:        input.Description,
		CoverImage:         input.CoverImage,
		Chapters:           input.Chapters,
		LastUploadedAt:     input.LastUploadedAt,
	}

	if err = s.novelRepo.Create(ctx, &novel); err != nil {
		return nil, err
	}
	return &dto.NovelCreatedResponse{NovelNo: novel.No}, nil
}

func (s *adminService) uploadFile(ctx context.Context, fh *multipart.FileHeader, subfolder string) (string, error) {
	if fh == nil || s.media == nil {
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	folder := path.Join(s.uploadFolder, subfolder)
	return s.media.UploadMedia(ctx, f, folder, fh.Filename)
}

func (s *adminService) CreateShorts(ctx context.Context, input dto.CreateShortsInput, image, music *multipart.FileHeader) (resp *dto.ShortsCreatedResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "admin.create_shorts", start, err) }()

	imageURL, err := s.uploadFile(ctx, image, "shorts/images")
	if err != nil {
		return nil, err
	}
	musicURL, err := s.uploadFile(ctx, music, "shorts/music")
	if err != nil {
		return nil, err
	}

	shorts := model.Shorts{
		NovelNo:  input.NovelNo,
		FormType: input.FormType,
		Content:  input.Content,
		Image:    imageURL,
		Music:    musicURL,
	}

	if err = s.shortsRepo.Create(ctx, &shorts); err != nil {
		s.cleanupMedia(ctx, imageURL, musicURL)
		return nil, err
	}

	if s.search != nil {
		view, viewErr := s.shortsRepo.FindViewByNo(ctx, shorts.No)
		if viewErr == nil {
			// Indexing failures are logged by the search service itself.
			_ = s.search.IndexShorts(view)
		}
	}

	return &dto.ShortsCreatedResponse{ShortsNo: shorts.No}, nil
}

func (s *adminService) cleanupMedia(ctx context.Context, urls ...string) {
	if s.media == nil {
		return
	}
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := s.media.DeleteMedia(ctx, u); err != nil {
			observe(s.observer, "admin.cleanup_media", time.Now(), err)
		}
	}
}

var novelCSVHeader = []string{
	"no", "source_platform_type", "source_id", "source_url", "title", "author",
	"chapters", "views", "recommends", "created_at", "last_uploaded_at",
}

func (s *adminService) ExportNovelsCSV(ctx context.Context, w io.Writer) (err error) {
	start := time.Now()
	defer func() { observe(s.observer, "admin.export_novels", start, err) }()

	novels, err := s.novelRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(novelCSVHeader); err != nil {
		return err
	}

	for i := range novels {
		n := &novels[i]
		lastUploaded := ""
		if n.LastUploadedAt != nil {
			lastUploaded = n.LastUploadedAt.Format(time.RFC3339)
		}
		record := []string{
			strconv.FormatUint(uint64(n.No), 10),
			strconv.FormatInt(int64(n.SourcePlatformType), 10),
			strconv.Itoa(n.SourceID),
			n.SourceURL,
			n.Title,
			n.Author,
			strconv.Itoa(n.Chapters),
			strconv.Itoa(n.Views),
			strconv.Itoa(n.Recommends),
			n.CreatedAt.Format(time.RFC3339),
			lastUploaded,
		}
		if err = cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	err = cw.Error()
	return err
}
