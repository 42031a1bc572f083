package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rmsplatform/rms/internal/common"
	"github.com/rmsplatform/rms/internal/server/auth"
	"github.com/rmsplatform/rms/internal/server/models"
)

const ctxUserIDKey = "userID"

// authRequired validates the bearer token and stores the caller's user id
// in the request context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthHeaderName)

		prefix := common.BearerScheme + " "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("missing bearer token"))
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, prefix), s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("invalid token"))
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

// adminRequired loads the caller and rejects anyone without the admin role.
// Must run after authRequired.
func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.userService.Profile(c.Request.Context(), c.GetString(ctxUserIDKey))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("unknown user"))
			return
		}

		if user.Role != models.RoleAdmin && !user.IsSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody("admin role required"))
			return
		}

		c.Next()
	}
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}
