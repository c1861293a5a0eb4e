package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/baton-ci/baton/pkg/ingest"
	"github.com/baton-ci/baton/pkg/store"
)

// mapServiceError maps store and service errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *store.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, store.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, store.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, "operation conflicts with current state")
	}
	if errors.Is(err, store.ErrPreconditionFailed) {
		return echo.NewHTTPError(http.StatusConflict, "state changed concurrently, retry")
	}
	if errors.Is(err, ingest.ErrBadToken) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid webhook token")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
