package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roachygames/battle-arena/internal/constants"
)

// PlayerRequired enforces the player identity header and injects it into the
// request context.
func PlayerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(constants.HeaderPlayerID))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrPlayerIDRequired})
			return
		}
		c.Set("playerID", id)
		c.Next()
	}
}

func playerID(c *gin.Context) string {
	v, _ := c.Get("playerID")
	s, _ := v.(string)
	return s
}
