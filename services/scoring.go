package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"quizhub/db"
	"quizhub/models"
	"quizhub/quiz"
	"quizhub/websocket"
)

var scoringService *ScoringService

// InitScoringService sets up the singleton scoring service
func InitScoringService(store db.Store, cache *RatingCache) {
	scoringService = NewScoringService(store, cache)
}

// GetScoringService returns the singleton scoring service
func GetScoringService() *ScoringService {
	return scoringService
}

// SubmitResult is the outcome of one answer submission
type SubmitResult struct {
	Correct bool
	Message string
	UserID  string
	Score   int
}

// ScoringService owns the submission pipeline. The whole read-modify-write
// span runs under one mutex so concurrent submissions cannot interleave and
// double-award the same task.
type ScoringService struct {
	store db.Store
	cache *RatingCache
	mu    sync.Mutex
}

// NewScoringService creates a scoring service over the given store. The cache
// may be nil.
func NewScoringService(store db.Store, cache *RatingCache) *ScoringService {
	return &ScoringService{store: store, cache: cache}
}

// TaskInfo reports whether a task exists and its point value
func (s *ScoringService) TaskInfo(ctx context.Context, taskID string) (bool, int, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	task, ok := doc.Tasks[taskID]
	if !ok {
		return false, 0, nil
	}
	return true, task.Points, nil
}

// Submit checks one answer for one user and updates the ledger.
//
// Validation failures (unknown task, missing or profane name) leave the store
// untouched: no attempt record, no user mutation. On success an attempt record
// is always appended, and the user's score grows by the task's point value the
// first time a correct answer is recorded for that task — repeated correct
// answers never double-count.
func (s *ScoringService) Submit(ctx context.Context, userKey, taskKey, rawAnswer string, wantsVisibility bool, candidateName string) (*SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	task, ok := doc.Tasks[taskKey]
	if !ok {
		return nil, ErrTaskNotFound
	}

	if wantsVisibility && candidateName == "" {
		return nil, ErrMissingName
	}
	if wantsVisibility {
		moderator := quiz.NewModerator(doc.Banned)
		if moderator.IsProfane(candidateName) {
			return nil, ErrProfaneName
		}
	}

	user, ok := doc.Users[userKey]
	if !ok {
		user = &models.User{ID: userKey, CreatedAt: time.Now().UTC()}
		doc.Users[userKey] = user
	}
	if wantsVisibility {
		user.Name = candidateName
		user.ShowInRating = true
	}

	isCorrect := quiz.NormalizeAnswer(rawAnswer) == quiz.NormalizeAnswer(task.Answer)

	// Prior-correct check happens before the new record is appended
	alreadyCorrect := false
	for _, a := range doc.Answers {
		if a.UserID == userKey && a.Task == taskKey && a.Correct {
			alreadyCorrect = true
			break
		}
	}

	doc.Answers = append(doc.Answers, models.Attempt{
		UserID:    userKey,
		Task:      taskKey,
		Answer:    rawAnswer,
		Correct:   isCorrect,
		CreatedAt: time.Now().UTC(),
	})

	awarded := false
	if isCorrect && !alreadyCorrect {
		user.Score += task.Value()
		awarded = true
	}

	if err := s.store.Write(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if awarded {
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx); err != nil {
				log.Printf("Failed to invalidate rating cache: %v", err)
			}
		}
		websocket.BroadcastRatingUpdate(quiz.Rank(doc.Users, quiz.DefaultRatingLimit))
	}

	message := "❌ Неправильно"
	if isCorrect {
		message = fmt.Sprintf("✅ Правильно! +%d бал.", task.Value())
	}

	return &SubmitResult{
		Correct: isCorrect,
		Message: message,
		UserID:  userKey,
		Score:   user.Score,
	}, nil
}
