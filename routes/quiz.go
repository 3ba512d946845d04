package routes

import (
	"quizhub/controllers"

	"github.com/gin-gonic/gin"
)

// GetTaskRouteHandler reports task existence and point value
func GetTaskRouteHandler(c *gin.Context) {
	controllers.GetTask(c)
}

// SubmitAnswerRouteHandler records an answer submission
func SubmitAnswerRouteHandler(c *gin.Context) {
	controllers.SubmitAnswer(c)
}

// GetRatingRouteHandler fetches the leaderboard
func GetRatingRouteHandler(c *gin.Context) {
	controllers.GetRating(c)
}
