package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/logger"
)

const sessionTokenKey = "access_token"

// TokenExchanger is the part of the Shopify client the OAuth handshake needs.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	AuthorizeURL(shop string) string
}

type AuthHandler struct {
	cfg     *config.Config
	shopify TokenExchanger
}

func NewAuthHandler(cfg *config.Config, shopify TokenExchanger) *AuthHandler {
	return &AuthHandler{cfg: cfg, shopify: shopify}
}

// Install redirects the merchant's browser to the Shopify authorization page.
func (h *AuthHandler) Install(c *gin.Context) {
	shop := c.Query("shop")
	c.Redirect(http.StatusFound, h.shopify.AuthorizeURL(shop))
}

// Callback exchanges the authorization code for an access token and keeps it
// in the cookie session. The token is also logged so it can be copied into
// SHOPIFY_ACCESS_TOKEN for configured deployments.
func (h *AuthHandler) Callback(c *gin.Context) {
	query := c.Request.URL.Query()
	if query.Get("hmac") != "" && h.cfg.Shopify.APISecret != "" {
		if !verifyCallbackHMAC(query, h.cfg.Shopify.APISecret) {
			c.String(http.StatusBadRequest, "HMAC validation failed")
			return
		}
	}

	code := query.Get("code")
	token, err := h.shopify.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		logger.Error("oauth callback failed", "err", err)
		c.String(http.StatusInternalServerError, "OAuth failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionTokenKey, token)
	if err := session.Save(); err != nil {
		logger.Warn("session save failed", "err", err)
	}

	logger.Info("access token obtained", "shop", query.Get("shop"), "token", token)
	c.String(http.StatusOK, "App installed successfully! You can now generate invoices.")
}

// verifyCallbackHMAC checks Shopify's signed query string: every parameter
// except hmac itself, sorted, joined with &, digested with HMAC-SHA256 keyed
// by the API secret.
func verifyCallbackHMAC(query url.Values, secret string) bool {
	received := query.Get("hmac")

	keys := make([]string, 0, len(query))
	for k := range query {
		if k == "hmac" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+strings.Join(query[k], ","))
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join(pairs, "&")))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(received))
}
