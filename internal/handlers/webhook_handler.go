package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/sirupsen/logrus"
)

// MaxBodyBytes caps a webhook body at 1 MiB.
const MaxBodyBytes int64 = 1 << 20

type WebhookService interface {
	HandleDelivery(ctx context.Context, signatureHeader string, body []byte) (models.PaymentStatusSnapshot, error)
	GetStatus(sourceID string) (models.PaymentStatusSnapshot, bool)
	TrackedSources() int
}

type WebhookHandler struct {
	Service         WebhookService
	SignatureHeader string
}

func NewWebhookHandler(s WebhookService, signatureHeader string) *WebhookHandler {
	if signatureHeader == "" {
		signatureHeader = "X-Webhook-Signature"
	}
	return &WebhookHandler{Service: s, SignatureHeader: signatureHeader}
}

// POST /webhooks/gateway
func (h *WebhookHandler) ReceiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read request body"})
		return
	}

	snapshot, err := h.Service.HandleDelivery(c.Request.Context(), c.GetHeader(h.SignatureHeader), body)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "accepted", "source_id": snapshot.SourceID})
	case errors.Is(err, models.ErrAuthentication):
		logrus.Warnf("Rejected webhook from %s: %s", c.ClientIP(), err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
	case errors.Is(err, models.ErrMalformedPayload):
		logrus.Warnf("Malformed webhook payload: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
	default:
		logrus.Errorf("Error handling webhook: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// GET /payments/:sourceId/status
func (h *WebhookHandler) GetPaymentStatus(c *gin.Context) {
	snapshot, ok := h.Service.GetStatus(c.Param("sourceId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment status not found"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GET /health
func (h *WebhookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tracked_sources": h.Service.TrackedSources()})
}
