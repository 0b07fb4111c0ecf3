package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", domain.NewValidationError("price", "price must not be negative"), http.StatusBadRequest, "price must not be negative"},
		{"invalid request", serviceerrors.NewInvalidRequestError("bad"), http.StatusBadRequest, "bad"},
		{"not found", serviceerrors.NewNotFoundError("product not found"), http.StatusNotFound, "product not found"},
		{"conflict", serviceerrors.NewConflictError("product already exists"), http.StatusConflict, "product already exists"},
		{"unprocessable", serviceerrors.NewUnprocessableEntityError("nope"), http.StatusUnprocessableEntity, "nope"},
		{"upstream hides driver error", serviceerrors.NewUpstreamError("database error", errors.New("dial tcp: refused")), http.StatusInternalServerError, "database error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleError(c, tt.err)

			if w.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, w.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantBody {
				t.Fatalf("expected error %q, got %q", tt.wantBody, body.Error)
			}
		})
	}
}
