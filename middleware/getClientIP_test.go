package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{name: "forwarded header wins", forwarded: "203.0.113.7, 10.0.0.1", realIP: "198.51.100.2", remoteAddr: "192.0.2.1:4321", want: "203.0.113.7"},
		{name: "real ip fallback", realIP: "198.51.100.2", remoteAddr: "192.0.2.1:4321", want: "198.51.100.2"},
		{name: "remote addr strips port", remoteAddr: "192.0.2.1:4321", want: "192.0.2.1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				c.Request.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
