// Package quote implements the public quote endpoints.
package quote

import (
	"context"
	"net/http"

	"movers-service/internal/domain/quote"
	"movers-service/internal/pkg/response"
	"movers-service/internal/pkg/validate"

	"github.com/gin-gonic/gin"
)

// Service is the slice of the quote service this handler depends on.
type Service interface {
	Submit(ctx context.Context, q *quote.QuoteRequest) (*quote.Submission, error)
}

type QuoteHandler struct {
	service Service
}

func NewQuoteHandler(service Service) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Submit handles POST /api/quote.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var req quote.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Invalid form data", validate.Details(err))
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, quote.SubmitQuoteResponse{
		Success:       true,
		QuoteID:       result.Reference,
		EstimatedCost: result.EstimatedCost,
		Message:       "Quote request submitted successfully",
	})
}

// Estimate handles POST /api/quote/estimate, the live preview the form
// recomputes as the customer fills it in. Partial input is fine.
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var req quote.EstimatePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Invalid form data", validate.Details(err))
		return
	}

	cost := quote.EstimateCost(req.MoveType, req.HomeSize, req.PackingService, req.StorageService)
	low, high := quote.EstimateRange(cost)

	c.JSON(http.StatusOK, quote.EstimatePreviewResponse{
		Success:       true,
		EstimatedCost: cost,
		RangeLow:      low,
		RangeHigh:     high,
	})
}
