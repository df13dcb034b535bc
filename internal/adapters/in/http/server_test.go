package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subscriptions/internal/core/application/usecases/commands"
	"subscriptions/internal/pkg/errs"
)

func newTestServer() *Server {
	return &Server{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_CommandError_MapsApplicationErrorsToStatusCodes(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantCode        int
		messageContains string
	}{
		{
			name:            "not found",
			err:             errs.NewObjectNotFoundError("subscription", "some-id"),
			wantCode:        http.StatusNotFound,
			messageContains: "not found",
		},
		{
			name:            "already subscribed",
			err:             commands.ErrSubscriptionAlreadyExists,
			wantCode:        http.StatusConflict,
			messageContains: "already has an active or paused subscription",
		},
		{
			name:            "invalid transition",
			err:             errs.NewInvalidTransitionError("resume", "Active"),
			wantCode:        http.StatusConflict,
			messageContains: "resume",
		},
		{
			name:            "validation failure",
			err:             errs.NewValueIsRequiredError("planID"),
			wantCode:        http.StatusBadRequest,
			messageContains: "planID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer()
			ctx, rec := newTestContext()

			require.NoError(t, server.commandError(ctx, tt.err, "Failed to resume subscription"))

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Contains(t, body.Message, tt.messageContains)
		})
	}
}

func TestServer_CommandError_DataConsistencyDistinctFromInfrastructure(t *testing.T) {
	server := newTestServer()

	consistencyCtx, consistencyRec := newTestContext()
	consistencyErr := errs.NewDataConsistencyError("subscription", "paused subscription has no open pause")
	require.NoError(t, server.commandError(consistencyCtx, consistencyErr, "Failed to resume subscription"))

	infraCtx, infraRec := newTestContext()
	require.NoError(t, server.commandError(infraCtx, errors.New("connection reset"), "Failed to resume subscription"))

	assert.Equal(t, http.StatusInternalServerError, consistencyRec.Code)
	assert.Equal(t, http.StatusInternalServerError, infraRec.Code)

	consistencyBody := decodeError(t, consistencyRec)
	infraBody := decodeError(t, infraRec)
	assert.Contains(t, consistencyBody.Message, "data consistency violation")
	assert.NotContains(t, infraBody.Message, "data consistency violation")
	assert.NotEqual(t, consistencyBody.Message, infraBody.Message)
}
