package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func contextWithHeaders(headers map[string]string) *echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded user wins", map[string]string{
			"X-Forwarded-User":  "alice",
			"X-Forwarded-Email": "alice@example.com",
		}, "alice"},
		{"email fallback", map[string]string{
			"X-Forwarded-Email": "bob@example.com",
		}, "bob@example.com"},
		{"remote user fallback", map[string]string{
			"X-Remote-User": "carol",
		}, "carol"},
		{"default", nil, "api-client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractAuthor(contextWithHeaders(tt.headers)))
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer secret-token", "secret-token"},
		{"trims whitespace", "Bearer  secret ", "secret"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			assert.Equal(t, tt.want, extractBearerToken(contextWithHeaders(headers)))
		})
	}
}
