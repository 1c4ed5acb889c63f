package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken(Session{UserID: "u-1", Name: "Budi", Email: "budi@example.com"})
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Budi", claims.Name)

	t.Run("Wrong secret", func(t *testing.T) {
		_, err := NewJWTManager("other", time.Hour).ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired, err := NewJWTManager("test-secret", -time.Minute).GenerateAccessToken(Session{UserID: "u-1"})
		require.NoError(t, err)
		_, err = m.ParseAndValidate(expired)
		assert.Error(t, err)
	})

	t.Run("Missing subject", func(t *testing.T) {
		anon, err := m.GenerateAccessToken(Session{})
		require.NoError(t, err)
		_, err = m.ParseAndValidate(anon)
		assert.Error(t, err)
	})
}

func TestSessionOptional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("test-secret", time.Hour)
	valid, err := m.GenerateAccessToken(Session{UserID: "u-42", Name: "Sari"})
	require.NoError(t, err)

	r := gin.New()
	r.Use(SessionOptional(m))
	r.GET("/whoami", func(c *gin.Context) {
		s := GetSession(c)
		if s == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, s.UserID)
	})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"No header", "", "anonymous"},
		{"Valid token", "Bearer " + valid, "u-42"},
		{"Lowercase scheme", "bearer " + valid, "u-42"},
		{"Garbage token", "Bearer nope", "anonymous"},
		{"Wrong scheme", "Basic " + valid, "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "middleware never aborts")
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestCallerKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.GenerateAccessToken(Session{UserID: "u-7"})
	require.NoError(t, err)

	r := gin.New()
	r.Use(SessionOptional(m))
	r.GET("/key", func(c *gin.Context) {
		c.String(http.StatusOK, CallerKey(c))
	})

	tests := []struct {
		name     string
		remote   string
		token    string
		clientID string
		want     string
	}{
		{"Anonymous uses the address", "10.0.0.1:5000", "", "", "ip:10.0.0.1"},
		{"Signed-in user ignores the address", "10.0.0.1:5000", token, "", "user:u-7"},
		{"Client id narrows the key", "10.0.0.1:5000", "", "tab-a", "ip:10.0.0.1|client:tab-a"},
		{"Client id is trimmed", "10.0.0.1:5000", token, "  tab-b ", "user:u-7|client:tab-b"},
		{"Oversized client id is ignored", "10.0.0.1:5000", "", strings.Repeat("x", 65), "ip:10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/key", nil)
			req.RemoteAddr = tt.remote
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			if tt.clientID != "" {
				req.Header.Set(ClientHeader, tt.clientID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
