package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Session is the signed-in user as seen by this service.
type Session struct {
	UserID string
	Name   string
	Email  string
}

// GetSession returns the session attached by SessionOptional, or nil if the
// request is anonymous.
func GetSession(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return nil
}

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if s := GetSession(c); s != nil {
		return s.UserID
	}
	return ""
}

// ClientHeader optionally names the browser tab or device a request comes
// from, so that anonymous users sharing an address are told apart.
const ClientHeader = "X-Client-ID"

const maxClientIDLen = 64

// CallerKey identifies the control a request comes from: the signed-in user,
// or the client address for anonymous requests, narrowed by X-Client-ID when
// the client sends one.
func CallerKey(c *gin.Context) string {
	key := "ip:" + c.ClientIP()
	if id := GetUserID(c); id != "" {
		key = "user:" + id
	}
	if client := strings.TrimSpace(c.GetHeader(ClientHeader)); client != "" && len(client) <= maxClientIDLen {
		key += "|client:" + client
	}
	return key
}
