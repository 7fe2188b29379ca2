package middleware

import (
	"net/http"

	"gourmet-slice-web/session"

	"github.com/gin-gonic/gin"
)

// RequireSession gates the admin screens on the presence of a session token.
// It is a UX convenience, not a security boundary: the check is
// presence-only, and the remote API independently verifies the token (and
// role) on every privileged call.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAuthenticated(c) {
			c.Redirect(http.StatusFound, "/admin-login")
			c.Abort()
			return
		}
		c.Next()
	}
}
