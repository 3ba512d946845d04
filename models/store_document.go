package models

// StoreDocument is the persisted state of the quiz: users and tasks keyed by id,
// the append-only attempt log, and extra banned words for name moderation.
// Tasks are administered externally and never mutated here.
type StoreDocument struct {
	Users   map[string]*User `bson:"users" json:"users"`
	Tasks   map[string]Task  `bson:"tasks" json:"tasks"`
	Answers []Attempt        `bson:"answers" json:"answers"`
	Banned  []string         `bson:"banned" json:"banned"`
}

// NewStoreDocument returns an empty document with initialized maps
func NewStoreDocument() *StoreDocument {
	return &StoreDocument{
		Users:   make(map[string]*User),
		Tasks:   make(map[string]Task),
		Answers: []Attempt{},
		Banned:  []string{},
	}
}
