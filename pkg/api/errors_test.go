package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baton-ci/baton/pkg/ingest"
	"github.com/baton-ci/baton/pkg/store"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", store.NewValidationError("test_suite", "required"), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create: %w", store.NewValidationError("name", "required")), http.StatusBadRequest},
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"already exists", store.ErrAlreadyExists, http.StatusConflict},
		{"conflict", store.ErrConflict, http.StatusConflict},
		{"precondition failed", store.ErrPreconditionFailed, http.StatusConflict},
		{"bad token", ingest.ErrBadToken, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestMapWebhookErrorRetriesOnTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", store.NewValidationError("shard_index", "out of range"), http.StatusBadRequest},
		{"bad token", ingest.ErrBadToken, http.StatusUnauthorized},
		{"unknown execution", store.ErrNotFound, http.StatusNotFound},
		{"conflicting shard", store.ErrConflict, http.StatusConflict},
		{"transient store failure", errors.New("connection reset"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapWebhookError(tt.err)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}
