package quiz

import (
	"testing"
	"time"

	"quizhub/models"
)

func visibleUser(id, name string, score int, createdAt time.Time) *models.User {
	return &models.User{ID: id, Name: name, Score: score, ShowInRating: true, CreatedAt: createdAt}
}

func TestRankOrdering(t *testing.T) {
	now := time.Now()
	users := map[string]*models.User{
		"u1": visibleUser("u1", "Alice", 30, now),
		"u2": visibleUser("u2", "Bob", 10, now),
		"u3": visibleUser("u3", "Carol", 20, now),
	}

	entries := Rank(users, 10)
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	wantNames := []string{"Alice", "Carol", "Bob"}
	wantScores := []int{30, 20, 10}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("Entry %d: expected rank %d, got %d", i, i+1, e.Rank)
		}
		if e.Name != wantNames[i] || e.Score != wantScores[i] {
			t.Errorf("Entry %d: expected %s/%d, got %s/%d", i, wantNames[i], wantScores[i], e.Name, e.Score)
		}
	}
}

func TestRankFiltering(t *testing.T) {
	now := time.Now()
	hidden := visibleUser("u1", "Hidden", 100, now)
	hidden.ShowInRating = false
	nameless := &models.User{ID: "u2", Score: 50, ShowInRating: true, CreatedAt: now}

	users := map[string]*models.User{
		"u1": hidden,
		"u2": nameless,
		"u3": visibleUser("u3", "Visible", 1, now),
	}

	entries := Rank(users, 10)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Visible" || entries[0].Rank != 1 {
		t.Errorf("Expected Visible at rank 1, got %s at rank %d", entries[0].Name, entries[0].Rank)
	}
}

func TestRankTieBreakEarliestFirst(t *testing.T) {
	base := time.Now()
	users := map[string]*models.User{
		"u1": visibleUser("u1", "Late", 10, base.Add(time.Hour)),
		"u2": visibleUser("u2", "Early", 10, base),
	}

	entries := Rank(users, 10)
	if entries[0].Name != "Early" || entries[1].Name != "Late" {
		t.Errorf("Expected tie to order earliest-registered first, got %s then %s", entries[0].Name, entries[1].Name)
	}
	// Ranks stay positional and contiguous across the tie
	if entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Errorf("Expected ranks 1,2, got %d,%d", entries[0].Rank, entries[1].Rank)
	}
}

func TestRankLimit(t *testing.T) {
	now := time.Now()
	users := map[string]*models.User{
		"u1": visibleUser("u1", "A", 3, now),
		"u2": visibleUser("u2", "B", 2, now),
		"u3": visibleUser("u3", "C", 1, now),
	}

	if got := len(Rank(users, 2)); got != 2 {
		t.Errorf("Expected 2 entries with limit 2, got %d", got)
	}
	// Non-positive limit falls back to the default
	if got := len(Rank(users, 0)); got != 3 {
		t.Errorf("Expected all 3 entries with fallback limit, got %d", got)
	}
	if got := len(Rank(users, -5)); got != 3 {
		t.Errorf("Expected all 3 entries with negative limit, got %d", got)
	}
}
