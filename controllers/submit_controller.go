package controllers

import (
	"errors"
	"log"
	"net/http"

	"quizhub/quiz"
	"quizhub/services"
	"quizhub/structs"

	"github.com/gin-gonic/gin"
)

// SubmitAnswer checks one answer submission and returns the scoring outcome
func SubmitAnswer(c *gin.Context) {
	var request structs.SubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "message": "Нет task или answer"})
		return
	}

	var telegramID int64
	if request.InitData != nil && request.InitData.User != nil {
		telegramID = request.InitData.User.ID
	}
	identity := quiz.ResolveIdentity(telegramID, request.UserID)

	result, err := services.GetScoringService().Submit(
		c.Request.Context(),
		identity.Key(),
		request.Task,
		request.Answer,
		request.ShowInRating,
		request.Name,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "task_not_found", "message": "Задание не найдено"})
		case errors.Is(err, services.ErrMissingName):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing_name", "message": "Чтобы показываться в рейтинге, нужно ввести имя"})
		case errors.Is(err, services.ErrProfaneName):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "profane_name", "message": "Имя содержит запрещённые слова"})
		default:
			log.Printf("Failed to record submission: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "store_unavailable", "message": "Не удалось сохранить ответ"})
		}
		return
	}

	c.JSON(http.StatusOK, structs.SubmitResponse{
		Ok:      true,
		Correct: result.Correct,
		Message: result.Message,
		UserID:  result.UserID,
		Score:   result.Score,
	})
}
