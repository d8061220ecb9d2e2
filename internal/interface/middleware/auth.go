package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/session"
	"github.com/bloodlink-bd/bloodlink-web/pkg/helpers"
)

const ctxSessionKey = "session"

// LoadSession hydrates the visitor's session from the signed cookie and
// redis. It never aborts: a missing, expired, or corrupt session just
// leaves the visitor anonymous.
func LoadSession(store *session.Store, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(helpers.SessionCookie)
		if err != nil || cookie == "" {
			c.Next()
			return
		}
		claims, err := jwt.ParseSessionToken(cookie)
		if err != nil {
			c.Next()
			return
		}
		if sess, ok := store.Hydrate(c.Request.Context(), claims.SessionID); ok {
			c.Set(ctxSessionKey, sess)
			c.Set("userID", sess.User.Key())
		}
		c.Next()
	}
}

// SessionFrom returns the hydrated session, or nil for anonymous visitors.
func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// RequireSession gates a route subtree. Anonymous visitors are redirected
// to the login screen with the intended destination preserved, so login
// can return them there. With roles given, signed-in users outside the
// list are sent to the home screen instead.
func RequireSession(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			from := c.Request.URL.RequestURI()
			c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(from))
			c.Abort()
			return
		}
		if len(roles) > 0 && !sess.User.HasRole(roles...) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
