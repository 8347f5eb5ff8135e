package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/mentorlink/internal/transport/api/middlewares"
)

func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}
