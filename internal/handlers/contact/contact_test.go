package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movers-service/internal/domain/contact"
	"movers-service/internal/pkg/validate"
)

func init() {
	gin.SetMode(gin.TestMode)
	validate.RegisterTagNames()
}

type mockService struct {
	SubmitFn func(ctx context.Context, m *contact.Message) (string, error)

	calls int
}

func (m *mockService) Submit(ctx context.Context, msg *contact.Message) (string, error) {
	m.calls++
	return m.SubmitFn(ctx, msg)
}

type errorResponse struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error"`
	Details []validate.FieldError `json:"details"`
}

func newRouter(svc Service) *gin.Engine {
	r := gin.New()
	r.POST("/api/contact", NewContactHandler(svc).Submit)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]any {
	return map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"phone":   "7135550123",
		"subject": "Storage question",
		"message": "Do you offer month-to-month storage?",
	}
}

func TestSubmitReturnsContactID(t *testing.T) {
	svc := &mockService{
		SubmitFn: func(ctx context.Context, m *contact.Message) (string, error) {
			assert.Equal(t, "Jane Doe", m.Name)
			assert.Equal(t, "Storage question", m.Subject)
			return "CT-1756700000000-abcdefghi", nil
		},
	}
	w := postJSON(t, newRouter(svc), validPayload())

	require.Equal(t, http.StatusOK, w.Code)
	var resp contact.SubmitContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "CT-1756700000000-abcdefghi", resp.ContactID)
	assert.Equal(t, "Contact form submitted successfully", resp.Message)
}

func TestSubmitRejectsShortMessage(t *testing.T) {
	svc := &mockService{}
	payload := validPayload()
	payload["message"] = "Hi"

	w := postJSON(t, newRouter(svc), payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid form data", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "message", resp.Details[0].Field)
	assert.Equal(t, "Message must be at least 10 characters", resp.Details[0].Message)
	assert.Zero(t, svc.calls)
}

func TestSubmitMapsServiceFailureTo500(t *testing.T) {
	svc := &mockService{
		SubmitFn: func(ctx context.Context, m *contact.Message) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	w := postJSON(t, newRouter(svc), validPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error)
}
