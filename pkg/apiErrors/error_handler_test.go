package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrSessionNotFound, http.StatusUnauthorized},
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrActionRejected, http.StatusUnprocessableEntity},
		{ErrExternalService, http.StatusBadGateway},
		{ErrCommunication, http.StatusServiceUnavailable},
		{ErrFeatureDisabled, http.StatusNotFound},
		{ErrRouteNotFound, http.StatusNotFound},
		{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "unable to approve account", map[string]string{"redirect": "/login"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t,
				`{"code":"`+tt.code+`","message":"unable to approve account","details":{"redirect":"/login"}}`,
				rec.Body.String())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)

	apiErr := FromError(errors.New("boom"), ErrExternalService)
	assert.Equal(t, ErrExternalService, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}
