// Package admin implements the authenticated lead-review API.
package admin

import (
	"context"
	"errors"
	"net/http"

	admindomain "movers-service/internal/domain/admin"
	"movers-service/internal/domain/contact"
	"movers-service/internal/domain/quote"
	xerrors "movers-service/internal/pkg/errors"
	"movers-service/internal/pkg/response"
	"movers-service/internal/pkg/validate"

	"github.com/gin-gonic/gin"
)

// Authenticator is the slice of the auth service the login endpoint uses.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// QuoteReader exposes stored quote requests to the dashboard.
type QuoteReader interface {
	List(ctx context.Context) ([]quote.QuoteRequest, error)
	GetByReference(ctx context.Context, ref string) (*quote.QuoteRequest, error)
}

// ContactReader exposes stored contact messages to the dashboard.
type ContactReader interface {
	List(ctx context.Context) ([]contact.Message, error)
}

type AdminHandler struct {
	auth     Authenticator
	quotes   QuoteReader
	contacts ContactReader
}

func NewAdminHandler(auth Authenticator, quotes QuoteReader, contacts ContactReader) *AdminHandler {
	return &AdminHandler{auth: auth, quotes: quotes, contacts: contacts}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req admindomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Invalid credentials", validate.Details(err))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, xerrors.ErrUnauthorized) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, admindomain.LoginResponse{Success: true, Token: token})
}

// ListQuotes handles GET /api/admin/quotes.
func (h *AdminHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quotes.List(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": quotes})
}

// GetQuote handles GET /api/admin/quotes/:reference.
func (h *AdminHandler) GetQuote(c *gin.Context) {
	q, err := h.quotes.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "Quote request not found")
			return
		}
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": q})
}

// ListContacts handles GET /api/admin/contacts.
func (h *AdminHandler) ListContacts(c *gin.Context) {
	messages, err := h.contacts.List(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": messages})
}
