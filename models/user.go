package models

import "time"

// User defines a quiz participant
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Username     string    `bson:"username,omitempty" json:"username,omitempty"`
	Score        int       `bson:"score" json:"score"`
	ShowInRating bool      `bson:"showInRating" json:"showInRating"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
