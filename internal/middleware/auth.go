package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookreview/internal/entity"
	"bookreview/internal/services"
)

const IdentityContextKey = "identity"

// Auth verifies the identity token from the cookie, falling back to an
// Authorization: Bearer header. Storage is never consulted.
func Auth(tokens *services.TokenService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		who, err := tokens.Parse(tokenFromRequest(c, cookieName))
		if err != nil {
			abort(c, services.ErrInvalidToken)
			return
		}

		c.Set(IdentityContextKey, who)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// the request through either way.
func OptionalAuth(tokens *services.TokenService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if who, err := tokens.Parse(tokenFromRequest(c, cookieName)); err == nil {
			c.Set(IdentityContextKey, who)
		}
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		who := GetIdentity(c)
		if who == nil {
			abort(c, services.ErrInvalidToken)
			return
		}
		if !who.IsAdmin() {
			abort(c, services.ErrAdminRequired)
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) *services.Identity {
	if v, exists := c.Get(IdentityContextKey); exists {
		if who, ok := v.(*services.Identity); ok {
			return who
		}
	}
	return nil
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

func abort(c *gin.Context, e *services.Error) {
	c.AbortWithStatusJSON(e.Kind.HTTPStatus(), entity.Fail(e.Message, nil))
}
