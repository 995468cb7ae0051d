package service

import (
	"context"
	"encoding/json"
	"html"
	"strings"
	"time"

	"novelshorts/internal/dto"
	"novelshorts/internal/repository"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const (
	shortsIndexUID     = "shorts"
	maxIndexedContent  = 2000
	defaultSearchLimit = 10
)

// SearchService mirrors the shorts catalog into Meilisearch. Indexing is
// best-effort: a missing client degrades to a no-op so the write path never
// depends on the search backend.
type SearchService interface {
	IndexShorts(view *dto.ShortsView) error
	SearchShorts(ctx context.Context, query string, limit int) ([]dto.ShortsView, error)
}

type shortsDoc struct {
	No      uint   `json:"no"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type searchService struct {
	client     meilisearch.ServiceManager
	shortsRepo repository.ShortsRepository
	sanitizer  *bluemonday.Policy
	observer   Observer
}

func NewSearchService(client meilisearch.ServiceManager, shortsRepo repository.ShortsRepository, observer Observer) SearchService {
	return &searchService{
		client:     client,
		shortsRepo: shortsRepo,
		sanitizer:  bluemonday.StrictPolicy(),
		observer:   observer,
	}
}

func (s *searchService) cleanForIndex(content string) string {
	cleaned := html.UnescapeString(s.sanitizer.Sanitize(content))
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if len(cleaned) > maxIndexedContent {
		cleaned = cleaned[:maxIndexedContent]
	}
	return cleaned
}

func (s *searchService) IndexShorts(view *dto.ShortsView) (err error) {
	if s.client == nil {
		return nil
	}

	start := time.Now()
	defer func() { observe(s.observer, "search.index_shorts", start, err) }()

	doc := shortsDoc{
		No:      view.No,
		Title:   view.Title,
		Author:  view.Author,
		Content: s.cleanForIndex(view.Content),
	}

	primaryKey := "no"
	_, err = s.client.Index(shortsIndexUID).AddDocuments([]shortsDoc{doc}, &primaryKey)
	return err
}

func (s *searchService) SearchShorts(ctx context.Context, query string, limit int) (views []dto.ShortsView, err error) {
	if s.client == nil {
		return []dto.ShortsView{}, nil
	}

	start := time.Now()
	defer func() { observe(s.observer, "search.search_shorts", start, err) }()

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	resp, err := s.client.Index(shortsIndexUID).Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}
	var docs []shortsDoc
	if err = json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	views = make([]dto.ShortsView, 0, len(docs))
	for _, doc := range docs {
		view, err := s.shortsRepo.FindViewByNo(ctx, doc.No)
		if err != nil {
			// The index can lag behind the catalog; skip stale hits.
			continue
		}
		views = append(views, *view)
	}
	return views, nil
}
