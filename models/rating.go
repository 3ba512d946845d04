package models

// RatingEntry is one row of the public leaderboard
type RatingEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// RatingUpdate is pushed to websocket clients after a scoring submission
type RatingUpdate struct {
	Type  string        `json:"type"`
	Items []RatingEntry `json:"items"`
}
