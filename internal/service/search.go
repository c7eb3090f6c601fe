package service

import (
	"context"
	"strings"
	"time"

	"github.com/jeehoo0767/dru-backend/internal/dto"
	"github.com/jeehoo0767/dru-backend/internal/repository"
	"github.com/jeehoo0767/dru-backend/internal/repository/mongodb"
	"go.uber.org/zap"
)

type searchService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newSearchService(logger *zap.Logger, repo *repository.Repository) Search {
	return &searchService{
		logger: logger,
		repo:   repo,
	}
}

// Search runs the substring OR-match listing and kicks off the detached
// search-term recording. The recording never delays or fails the response.
func (s *searchService) Search(ctx context.Context, q dto.SearchQuery) (*dto.PostList, error) {
	filter := mongodb.PostFilter{
		Search:        q.Q,
		DiseasePeriod: q.DiseasePeriod,
	}

	posts, total, err := s.repo.Mongo.Post.FindPage(ctx, filter, mongodb.ParseSortMode(q.OrderBy), q.PostNum, q.Skip())
	if err != nil {
		s.logger.Sugar().Errorf("failed to search posts with query(%s): %s", q.Q, err.Error())
		return nil, ErrInternal
	}

	go s.recordTerms(q.Q)

	return dto.NewPostList(total, stripBodies(posts)), nil
}

// recordTerms writes one frequency bump per whitespace-separated term.
// Failures are isolated per term and only logged.
func (s *searchService) recordTerms(q string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	for _, term := range strings.Fields(q) {
		if err := s.repo.Mongo.SearchTerm.RecordOccurrence(ctx, term); err != nil {
			s.logger.Sugar().Errorf("failed to record search term(%s): %s", term, err.Error())
		}
	}
}
