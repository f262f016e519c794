package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-webhook-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.WebhookHandler) {
	a.Router.POST("/webhooks/gateway", h.ReceiveWebhook)

	payments := a.Router.Group("/payments")
	payments.GET("/:sourceId/status", h.GetPaymentStatus)

	a.Router.GET("/health", h.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
