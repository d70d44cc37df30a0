package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notepad-be/internal/dto"
	"notepad-be/internal/pkg/apperror"
	"notepad-be/internal/pkg/logger"
	"notepad-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletionService struct {
	gotUserId string
	gotReq    *dto.CompletionRequest
	res       *dto.CompletionResponse
	err       error
}

func (s *stubCompletionService) GenerateResponse(_ context.Context, userId string, req *dto.CompletionRequest) (*dto.CompletionResponse, error) {
	s.gotUserId = userId
	s.gotReq = req
	return s.res, s.err
}

func newCompletionApp(svc *stubCompletionService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))
	NewCompletionController(svc, serverutils.NewJwtAuth(testSecret)).RegisterRoutes(app.Group("/api"))
	return app
}

func call(t *testing.T, app *fiber.App, userId, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/callable/generateAIResponse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userId != "" {
		req.Header.Set("Authorization", bearer(t, userId))
	}

	res, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return res.StatusCode, out
}

func TestGenerateAIResponseSuccess(t *testing.T) {
	svc := &stubCompletionService{res: &dto.CompletionResponse{Text: "Hi there"}}
	app := newCompletionApp(svc)

	status, out := call(t, app, "user-a", `{"data":{"prompt":"Hello","temperature":0.2}}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"text": "Hi there"}, out["result"])

	assert.Equal(t, "user-a", svc.gotUserId)
	require.NotNil(t, svc.gotReq.Prompt)
	assert.Equal(t, "Hello", *svc.gotReq.Prompt)
	require.NotNil(t, svc.gotReq.Temperature)
	assert.Equal(t, 0.2, *svc.gotReq.Temperature)
}

func TestGenerateAIResponseAnonymous(t *testing.T) {
	svc := &stubCompletionService{}
	app := newCompletionApp(svc)

	status, out := call(t, app, "", `{"data":{"prompt":"Hello"}}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	errBody := out["error"].(map[string]interface{})
	assert.Equal(t, "UNAUTHENTICATED", errBody["status"])
	assert.Equal(t, "You must be logged in to use AI features", errBody["message"])
	assert.Nil(t, svc.gotReq)
}

func TestGenerateAIResponseRejectsNonStringPrompt(t *testing.T) {
	svc := &stubCompletionService{}
	app := newCompletionApp(svc)

	for _, body := range []string{`{"data":{"prompt":42}}`, `not json`} {
		status, out := call(t, app, "user-a", body)
		assert.Equal(t, http.StatusBadRequest, status)
		errBody := out["error"].(map[string]interface{})
		assert.Equal(t, "INVALID_ARGUMENT", errBody["status"])
		assert.Equal(t, "The function must be called with a valid prompt", errBody["message"])
	}
	assert.Nil(t, svc.gotReq)
}

func TestGenerateAIResponseMissingDataReachesService(t *testing.T) {
	svc := &stubCompletionService{err: apperror.NewInvalidArgumentError("The function must be called with a valid prompt")}
	app := newCompletionApp(svc)

	status, _ := call(t, app, "user-a", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.Prompt)
}

func TestGenerateAIResponseInternalCarriesCorrelationId(t *testing.T) {
	svc := &stubCompletionService{
		err: apperror.NewInternalError("Failed to generate AI response", assert.AnError).WithCorrelationId("cid-1"),
	}
	app := newCompletionApp(svc)

	status, out := call(t, app, "user-a", `{"data":{"prompt":"Hello"}}`)
	assert.Equal(t, http.StatusInternalServerError, status)

	errBody := out["error"].(map[string]interface{})
	assert.Equal(t, "INTERNAL", errBody["status"])
	assert.Equal(t, "Failed to generate AI response", errBody["message"])
	assert.Equal(t, map[string]interface{}{"correlation_id": "cid-1"}, errBody["details"])
}
