package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "movers-service/internal/domain/admin"
	"movers-service/internal/domain/contact"
	"movers-service/internal/domain/quote"
	xerrors "movers-service/internal/pkg/errors"
	"movers-service/internal/pkg/validate"
)

func init() {
	gin.SetMode(gin.TestMode)
	validate.RegisterTagNames()
}

type mockAuth struct {
	LoginFn func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	return m.LoginFn(ctx, email, password)
}

type mockQuotes struct {
	ListFn           func(ctx context.Context) ([]quote.QuoteRequest, error)
	GetByReferenceFn func(ctx context.Context, ref string) (*quote.QuoteRequest, error)
}

func (m *mockQuotes) List(ctx context.Context) ([]quote.QuoteRequest, error) {
	return m.ListFn(ctx)
}

func (m *mockQuotes) GetByReference(ctx context.Context, ref string) (*quote.QuoteRequest, error) {
	return m.GetByReferenceFn(ctx, ref)
}

type mockContacts struct {
	ListFn func(ctx context.Context) ([]contact.Message, error)
}

func (m *mockContacts) List(ctx context.Context) ([]contact.Message, error) {
	return m.ListFn(ctx)
}

func newRouter(auth Authenticator, quotes QuoteReader, contacts ContactReader) *gin.Engine {
	h := NewAdminHandler(auth, quotes, contacts)
	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	r.GET("/api/admin/quotes", h.ListQuotes)
	r.GET("/api/admin/quotes/:reference", h.GetQuote)
	r.GET("/api/admin/contacts", h.ListContacts)
	return r
}

func TestLoginReturnsToken(t *testing.T) {
	auth := &mockAuth{
		LoginFn: func(ctx context.Context, email, password string) (string, error) {
			assert.Equal(t, "admin@example.com", email)
			return "signed.jwt.token", nil
		},
	}
	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter(auth, nil, nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp admindomain.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := &mockAuth{
		LoginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", xerrors.ErrUnauthorized
		},
	}
	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter(auth, nil, nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid email or password", resp.Error)
}

func TestListQuotes(t *testing.T) {
	quotes := &mockQuotes{
		ListFn: func(ctx context.Context) ([]quote.QuoteRequest, error) {
			return []quote.QuoteRequest{
				{Reference: "QT-1-aaaaaaaaa", FirstName: "Jane"},
				{Reference: "QT-2-bbbbbbbbb", FirstName: "John"},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/quotes", nil)
	w := httptest.NewRecorder()
	newRouter(nil, quotes, nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Items   []quote.QuoteRequest `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "QT-1-aaaaaaaaa", resp.Items[0].Reference)
}

func TestGetQuoteNotFound(t *testing.T) {
	quotes := &mockQuotes{
		GetByReferenceFn: func(ctx context.Context, ref string) (*quote.QuoteRequest, error) {
			return nil, xerrors.ErrNotFound
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/quotes/QT-404-missing", nil)
	w := httptest.NewRecorder()
	newRouter(nil, quotes, nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Quote request not found", resp.Error)
}

func TestListContacts(t *testing.T) {
	contacts := &mockContacts{
		ListFn: func(ctx context.Context) ([]contact.Message, error) {
			return []contact.Message{{Reference: "CT-1-aaaaaaaaa", Subject: "Storage question"}}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	w := httptest.NewRecorder()
	newRouter(nil, nil, contacts).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool              `json:"success"`
		Items   []contact.Message `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Storage question", resp.Items[0].Subject)
}
