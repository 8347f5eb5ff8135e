package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

const (
	DefaultSearchLimit     uint    = 10
	DefaultSearchThreshold float64 = 0.7

	embeddingTimeout = 10 * time.Second
)

type SearchService struct {
	mentorRepo MentorRepository
	embClient  EmbeddingClient
	threshold  float64
	l          *logrus.Entry
}

func NewSearchService(u uow.UOW, embClient EmbeddingClient, l *logrus.Logger) (*SearchService, error) {
	mentorRepo, mentorRepoErr := uow.GetRepositoryAs[MentorRepository](u, repoargs.MentorRepoName)
	if mentorRepoErr != nil {
		return nil, mentorRepoErr
	}
	return &SearchService{
		mentorRepo: mentorRepo,
		embClient:  embClient,
		threshold:  DefaultSearchThreshold,
		l:          l.WithField("component", "search_service"),
	}, nil
}

type SearchResult struct {
	Mentors  []domain.MentorProfile
	Fallback bool
}

// Search ранжирует менторов по близости эмбеддинга запроса. Любой сбой провайдера
// или векторного запроса переключает на запасной путь - регистронезависимый поиск
// подстроки по биографии и навыкам - с пометкой Fallback в результате.
// Пустой запрос отклоняется до обращения к провайдеру.
func (s *SearchService) Search(ctx context.Context, query string, limit uint) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search: %w", domain.ErrEmptySearchQuery)
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	mentors, primaryErr := s.searchByEmbedding(ctx, query, limit)
	if primaryErr == nil {
		return &SearchResult{Mentors: mentors}, nil
	}
	s.l.WithError(primaryErr).WithField("query", query).Warn("vector search failed, falling back to keyword search")

	mentors, fallbackErr := s.mentorRepo.SearchByKeyword(ctx, repoargs.SearchByKeyword{
		Query: query,
		Limit: limit,
	})
	if fallbackErr != nil {
		return nil, fmt.Errorf("search fallback: %w", fallbackErr)
	}
	return &SearchResult{Mentors: mentors, Fallback: true}, nil
}

func (s *SearchService) searchByEmbedding(
	ctx context.Context,
	query string,
	limit uint,
) ([]domain.MentorProfile, error) {
	embCtx, cancel := context.WithTimeout(ctx, embeddingTimeout)
	defer cancel()

	vector, embErr := s.embClient.Embed(embCtx, query)
	if embErr != nil {
		return nil, fmt.Errorf("embedding query: %w", embErr)
	}

	mentors, searchErr := s.mentorRepo.SearchBySimilarity(ctx, repoargs.SearchBySimilarity{
		Embedding: vector,
		Threshold: s.threshold,
		Limit:     limit,
	})
	if searchErr != nil {
		return nil, fmt.Errorf("similarity query: %w", searchErr)
	}
	return mentors, nil
}
