package api

import (
	"strings"

	echo "github.com/labstack/echo/v5"
)

// extractAuthor extracts the requesting user from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "api-client"
func extractAuthor(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}

// extractBearerToken pulls the token out of an Authorization: Bearer header.
// Returns "" when the header is absent or malformed.
func extractBearerToken(c *echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
