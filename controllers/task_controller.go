package controllers

import (
	"net/http"

	"quizhub/services"
	"quizhub/structs"

	"github.com/gin-gonic/gin"
)

// GetTask reports whether a task exists and how many points it is worth
func GetTask(c *gin.Context) {
	id := c.Param("id")

	exists, points, err := services.GetScoringService().TaskInfo(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "store_unavailable", "message": "Хранилище недоступно"})
		return
	}

	if !exists {
		c.JSON(http.StatusOK, structs.TaskResponse{Ok: true, Exists: false})
		return
	}
	c.JSON(http.StatusOK, structs.TaskResponse{Ok: true, Exists: true, Points: points})
}
