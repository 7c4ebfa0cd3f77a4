package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/invoice"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/logger"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/models"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/shopify"
	"github.com/kunallagu/shopify-gst-invoice-app-2/pkg/mailer"
)

// OrderFetcher retrieves one order from the commerce platform.
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID, token string) (*models.Order, error)
}

// PDFConverter turns rendered invoice HTML into PDF bytes.
type PDFConverter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// InvoiceMailer delivers the PDF as an email attachment.
type InvoiceMailer interface {
	SendInvoice(to, subject string, pdf []byte) error
}

type InvoiceHandler struct {
	fetcher   OrderFetcher
	calc      *invoice.Calculator
	renderer  *invoice.Renderer
	converter PDFConverter
	mailer    InvoiceMailer
}

func NewInvoiceHandler(fetcher OrderFetcher, calc *invoice.Calculator, renderer *invoice.Renderer, converter PDFConverter, m InvoiceMailer) *InvoiceHandler {
	return &InvoiceHandler{
		fetcher:   fetcher,
		calc:      calc,
		renderer:  renderer,
		converter: converter,
		mailer:    m,
	}
}

// sessionToken returns the OAuth token stored by the install callback, if any.
// A configured SHOPIFY_ACCESS_TOKEN takes precedence inside the client.
func sessionToken(c *gin.Context) string {
	if v := sessions.Default(c).Get(sessionTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// generate runs the full pipeline: fetch, compute, render, convert. Both the
// download and email routes share this one contract.
func (h *InvoiceHandler) generate(c *gin.Context, orderID string) (*models.InvoiceSummary, *models.Order, []byte, error) {
	order, err := h.fetcher.GetOrder(c.Request.Context(), orderID, sessionToken(c))
	if err != nil {
		return nil, nil, nil, err
	}

	summary := h.calc.Compute(order)
	html, err := h.renderer.Render(summary)
	if err != nil {
		return nil, nil, nil, err
	}

	pdf, err := h.converter.Convert(c.Request.Context(), html)
	if err != nil {
		return nil, nil, nil, err
	}
	return summary, order, pdf, nil
}

// Download streams the invoice PDF as an attachment.
func (h *InvoiceHandler) Download(c *gin.Context) {
	orderID := c.Param("orderId")

	_, order, pdf, err := h.generate(c, orderID)
	if err != nil {
		logger.Error("invoice generation failed", "order_id", orderID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate invoice",
			"details": detailFor(err),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Invoice-%s.pdf", order.Name))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// PreviewHTML renders the invoice HTML without PDF conversion.
func (h *InvoiceHandler) PreviewHTML(c *gin.Context) {
	orderID := c.Param("orderId")

	order, err := h.fetcher.GetOrder(c.Request.Context(), orderID, sessionToken(c))
	if err != nil {
		logger.Error("invoice html failed", "order_id", orderID, "err", err)
		c.String(http.StatusInternalServerError, "Failed to generate invoice HTML")
		return
	}

	html, err := h.renderer.Render(h.calc.Compute(order))
	if err != nil {
		logger.Error("invoice html failed", "order_id", orderID, "err", err)
		c.String(http.StatusInternalServerError, "Failed to generate invoice HTML")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

type emailRequest struct {
	Email string `json:"email"`
}

// Email sends the invoice PDF to a caller-supplied address.
func (h *InvoiceHandler) Email(c *gin.Context) {
	orderID := c.Param("orderId")

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	_, order, pdf, err := h.generate(c, orderID)
	if err != nil {
		logger.Error("invoice email failed", "order_id", orderID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to email invoice",
			"details": detailFor(err),
		})
		return
	}

	subject := fmt.Sprintf("Invoice for Order %s", order.Name)
	if err := h.mailer.SendInvoice(req.Email, subject, pdf); err != nil {
		if errors.Is(err, mailer.ErrMissingRecipient) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}
		logger.Error("invoice email failed", "order_id", orderID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to email invoice",
			"details": detailFor(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Invoice emailed successfully to %s", req.Email),
	})
}

// Generate produces the invoice and returns metadata plus a download URL.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	orderID := c.Param("orderId")

	_, order, _, err := h.generate(c, orderID)
	if err != nil {
		logger.Error("invoice generation failed", "order_id", orderID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate invoice",
			"details": detailFor(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Invoice generated successfully",
		"orderNumber": order.Name,
		"downloadUrl": "/invoice/" + orderID,
	})
}

// Health reports that the service is up.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "Shopify GST Invoice App is running.")
}

// detailFor extracts the most useful human-readable detail from the error
// chain, preferring the upstream payload of a fetch failure.
func detailFor(err error) string {
	var fetchErr *shopify.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Detail
	}
	return err.Error()
}
