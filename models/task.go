package models

// Task defines a quiz challenge with its canonical answer and point value
type Task struct {
	Answer string `bson:"answer" json:"answer"`
	Points int    `bson:"points" json:"points"`
}

// Value returns the points awarded for a correct answer, defaulting to 1
func (t Task) Value() int {
	if t.Points <= 0 {
		return 1
	}
	return t.Points
}
