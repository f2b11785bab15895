package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marketplace/internal/domain"
)

const callerKey = "caller"

// TokenParser turns a bearer token into the caller's identity.
type TokenParser interface {
	Parse(raw string) (domain.RequestContext, error)
}

// AuthRequired identifies the caller from the Authorization header (or the
// "token" cookie the SPA sets) and rejects anonymous requests.
func AuthRequired(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearer(c)
		if raw == "" {
			abortUnauthorized(c, "missing token")
			return
		}
		who, err := p.Parse(raw)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}
		c.Set(callerKey, who)
		c.Next()
	}
}

// Caller returns the identity AuthRequired stored.
func Caller(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	who, ok := v.(domain.RequestContext)
	return who, ok
}

func bearer(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	if tok, err := c.Cookie("token"); err == nil {
		return strings.TrimSpace(tok)
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
