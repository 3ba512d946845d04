package quiz

import (
	"sort"

	"quizhub/models"
)

// DefaultRatingLimit is used when the caller supplies no usable limit
const DefaultRatingLimit = 10

// Rank builds the public leaderboard: users that opted in and have a name,
// sorted by score descending. Ties order by earliest registration first, then
// by user key, so the ranking is deterministic. Ranks are positional 1..N with
// no gaps. The input is not mutated.
func Rank(users map[string]*models.User, limit int) []models.RatingEntry {
	if limit <= 0 {
		limit = DefaultRatingLimit
	}

	visible := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.ShowInRating && u.Name != "" {
			visible = append(visible, u)
		}
	}

	sort.Slice(visible, func(i, j int) bool {
		if visible[i].Score != visible[j].Score {
			return visible[i].Score > visible[j].Score
		}
		if !visible[i].CreatedAt.Equal(visible[j].CreatedAt) {
			return visible[i].CreatedAt.Before(visible[j].CreatedAt)
		}
		return visible[i].ID < visible[j].ID
	})

	if len(visible) > limit {
		visible = visible[:limit]
	}

	entries := make([]models.RatingEntry, 0, len(visible))
	for i, u := range visible {
		entries = append(entries, models.RatingEntry{
			Rank:  i + 1,
			Name:  u.Name,
			Score: u.Score,
		})
	}
	return entries
}
