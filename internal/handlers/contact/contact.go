// Package contact implements the public contact endpoint.
package contact

import (
	"context"
	"net/http"

	"movers-service/internal/domain/contact"
	"movers-service/internal/pkg/response"
	"movers-service/internal/pkg/validate"

	"github.com/gin-gonic/gin"
)

type Service interface {
	Submit(ctx context.Context, m *contact.Message) (string, error)
}

type ContactHandler struct {
	service Service
}

func NewContactHandler(service Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Invalid form data", validate.Details(err))
		return
	}

	contactID, err := h.service.Submit(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, contact.SubmitContactResponse{
		Success:   true,
		ContactID: contactID,
		Message:   "Contact form submitted successfully",
	})
}
