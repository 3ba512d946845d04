package controllers

import (
	"net/http"
	"strconv"

	"quizhub/services"

	"github.com/gin-gonic/gin"
)

// GetRating returns the public leaderboard, top N by score
func GetRating(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 0 // falls back to the service default
	}

	entries, err := services.GetLeaderboardService().TopN(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "store_unavailable", "message": "Хранилище недоступно"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": entries})
}
