package user

import (
	"strings"

	"flightservice/pkg/apperror"
	"flightservice/pkg/session"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// AuthMiddleware requires "Authorization: Token <key>" (or Bearer) and stores
// the resolved session in the gin context.
func AuthMiddleware(s *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			apperror.Send(c, ErrUnauthorized)
			c.Abort()
			return
		}

		sess, err := s.Authenticate(c.Request.Context(), token)
		if err != nil {
			apperror.Send(c, err)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Set("user_id", sess.UserID)
		c.Next()
	}
}

// SessionFrom returns the session stored by AuthMiddleware.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func tokenFromHeader(h string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "token", "bearer":
		return strings.TrimSpace(token)
	default:
		return ""
	}
}
