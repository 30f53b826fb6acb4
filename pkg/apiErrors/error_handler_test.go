package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrMissingCredentials, wantStatus: http.StatusUnauthorized},
		{code: ErrMalformedCredentials, wantStatus: http.StatusUnauthorized},
		{code: ErrInvalidAPIKey, wantStatus: http.StatusForbidden},
		{code: ErrInvalidDays, wantStatus: http.StatusBadRequest},
		{code: ErrUpstreamInvalid, wantStatus: http.StatusInternalServerError},
		{code: ErrUpstreamUnavailable, wantStatus: http.StatusBadGateway},
		{code: ErrUpstreamTimeout, wantStatus: http.StatusGatewayTimeout},
		{code: "UNKNOWN", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "message", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "message", body.Message)
		})
	}
}

func TestWriteRaw(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteRaw(rec, http.StatusBadRequest, []byte(`{"error":"bad token"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `{"error":"bad token"}`, rec.Body.String())
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidDays).Code)

	apiErr := FromError(errors.New("boom"), ErrUpstreamInvalid)
	assert.Equal(t, ErrUpstreamInvalid, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}
