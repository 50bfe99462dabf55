// internal/app/router.go
package app

import (
	adminHandler "movers-service/internal/handlers/admin"
	contactHandler "movers-service/internal/handlers/contact"
	paymentHandler "movers-service/internal/handlers/payment"
	quoteHandler "movers-service/internal/handlers/quote"
	wsHandler "movers-service/internal/handlers/ws"
	"movers-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	QuoteHandler   *quoteHandler.QuoteHandler
	ContactHandler *contactHandler.ContactHandler
	PaymentHandler *paymentHandler.PaymentHandler
	AdminHandler   *adminHandler.AdminHandler
	WSHandler      *wsHandler.WSHandler
	AuthMiddleware *middleware.AuthMiddleware

	// SubmitLimit throttles the public form endpoints. nil when redis
	// is not configured.
	SubmitLimit gin.HandlerFunc
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== Public Routes ====================
	public := api.Group("")
	if h.SubmitLimit != nil {
		public.Use(h.SubmitLimit)
	}
	{
		public.POST("/quote", h.QuoteHandler.Submit)
		public.POST("/quote/estimate", h.QuoteHandler.Estimate)
		public.POST("/contact", h.ContactHandler.Submit)
		public.POST("/create-payment-intent", h.PaymentHandler.CreateIntent)
	}

	// ==================== Admin Routes ====================
	api.POST("/admin/login", h.AdminHandler.Login)
	api.GET("/admin/events", h.WSHandler.HandleConnection)

	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.Auth())
	{
		admin.GET("/quotes", h.AdminHandler.ListQuotes)
		admin.GET("/quotes/:reference", h.AdminHandler.GetQuote)
		admin.GET("/contacts", h.AdminHandler.ListContacts)
	}
}
