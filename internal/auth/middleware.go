package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SessionOptional attaches the session from "Authorization: Bearer <token>"
// when the token is valid. It never aborts: handlers decide whether a
// missing session is an error, and in which order relative to other checks.
func SessionOptional(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			zerolog.Ctx(c.Request.Context()).Debug().Msg("ignoring malformed Authorization header")
			c.Next()
			return
		}

		claims, err := jwtManager.ParseAndValidate(strings.TrimSpace(parts[1]))
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("ignoring invalid session token")
			c.Next()
			return
		}

		c.Set(sessionKey, &Session{
			UserID: claims.UserID,
			Name:   claims.Name,
			Email:  claims.Email,
		})

		c.Next()
	}
}
