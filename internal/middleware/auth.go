package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
)

const (
	ContextUser = "user"

	SessionCookie = "session"
)

// SessionMiddleware resolve a sessão, se houver, e segue adiante. Quem
// decide se o usuário pode agir é o guard, dentro de cada caso de uso.
func SessionMiddleware(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}

		if token != "" {
			if u, err := sessions.Parse(token); err == nil {
				c.Set(ContextUser, u)
				c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), u))
			}
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUser returns nil for anonymous requests.
func CurrentUser(c *gin.Context) *auth.User {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*auth.User); ok {
			return u
		}
	}
	return nil
}
