package services

import (
	"context"
	"fmt"
	"log"

	"quizhub/db"
	"quizhub/models"
	"quizhub/quiz"
)

var leaderboardService *LeaderboardService

// InitLeaderboardService sets up the singleton leaderboard service
func InitLeaderboardService(store db.Store, cache *RatingCache) {
	leaderboardService = &LeaderboardService{store: store, cache: cache}
}

// GetLeaderboardService returns the singleton leaderboard service
func GetLeaderboardService() *LeaderboardService {
	return leaderboardService
}

// LeaderboardService derives the public rating from the ledger. Read-only.
type LeaderboardService struct {
	store db.Store
	cache *RatingCache
}

// TopN returns the top rated users. A non-positive limit falls back to the
// default of 10. Results are served from the cache when one is configured.
func (s *LeaderboardService) TopN(ctx context.Context, limit int) ([]models.RatingEntry, error) {
	if limit <= 0 {
		limit = quiz.DefaultRatingLimit
	}

	if s.cache != nil {
		if entries, ok := s.cache.Get(ctx, limit); ok {
			return entries, nil
		}
	}

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	entries := quiz.Rank(doc.Users, limit)

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, entries); err != nil {
			log.Printf("Failed to cache rating: %v", err)
		}
	}
	return entries, nil
}
