package structs

// InitDataUser is the Telegram user carried in the web-app init data
type InitDataUser struct {
	ID int64 `json:"id"`
}

// InitData is the identity payload forwarded by the Telegram web app.
// Signature verification is out of scope; the id is trusted as supplied.
type InitData struct {
	User *InitDataUser `json:"user,omitempty"`
}

type SubmitRequest struct {
	Task         string    `json:"task" binding:"required"`
	Answer       string    `json:"answer" binding:"required"`
	UserID       string    `json:"userId,omitempty"`
	Name         string    `json:"name,omitempty"`
	ShowInRating bool      `json:"showInRating,omitempty"`
	InitData     *InitData `json:"initData,omitempty"`
}

type SubmitResponse struct {
	Ok      bool   `json:"ok"`
	Correct bool   `json:"correct"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Score   int    `json:"score"`
}

type TaskResponse struct {
	Ok     bool `json:"ok"`
	Exists bool `json:"exists"`
	Points int  `json:"points,omitempty"`
}
