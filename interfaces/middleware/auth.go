package middleware

import (
	"net/http"

	"pjeseza-web/domain/dto"
	"pjeseza-web/domain/model"
	"pjeseza-web/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextSessionID is the per-browser identifier set by SessionCookie.
	ContextSessionID = "sessionID"
	// ContextSession is the restored login set by Auth.
	ContextSession = "session"
)

// SessionCookie guarantees every request carries a stable browser
// identifier, issuing one when the cookie is absent.
func SessionCookie(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(cookieName, id, 60*60*24*365, "/", "", false, true)
		}
		c.Set(ContextSessionID, id)
		c.Next()
	}
}

// Auth restores the persisted session and rejects the request with 401 when
// there is none. Handlers behind it can rely on ContextSession being set.
func Auth(sessions usecase.ISessionUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(ContextSessionID)
		session, err := sessions.Current(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Res{
				ResponseCode:    "500",
				ResponseMessage: "Session lookup failed",
			})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Res{
				ResponseCode:    "401",
				ResponseMessage: "Not authenticated",
			})
			return
		}
		c.Set(ContextSession, session)
		c.Next()
	}
}

// CurrentSession pulls the session Auth stored on the context.
func CurrentSession(c *gin.Context) *model.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	session, _ := v.(*model.Session)
	return session
}
