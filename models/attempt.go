package models

import "time"

// Attempt is one recorded answer submission, correct or not.
// Attempts are append-only; repeated submissions each add a record.
type Attempt struct {
	UserID    string    `bson:"userId" json:"userId"`
	Task      string    `bson:"task" json:"task"`
	Answer    string    `bson:"answer" json:"answer"`
	Correct   bool      `bson:"correct" json:"correct"`
	CreatedAt time.Time `bson:"createdAt" json:"ts"`
}
