package shopify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/models"
)

// ErrMissingCredentials is returned before any network call when the shop
// domain or access token is not configured.
var ErrMissingCredentials = errors.New("shopify: missing SHOPIFY_ACCESS_TOKEN or SHOPIFY_DOMAIN")

// FetchError carries the upstream status and error payload of a failed
// Admin API call.
type FetchError struct {
	OrderID string
	Status  int
	Detail  string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("shopify: failed to fetch order %s: status %d: %s", e.OrderID, e.Status, e.Detail)
}

// Client talks to the Shopify Admin REST API for a single shop.
type Client struct {
	http    *resty.Client
	cfg     config.ShopifyConfig
	baseURL string
}

func NewClient(cfg config.ShopifyConfig) *Client {
	c := &Client{
		http: resty.New().SetTimeout(15 * time.Second),
		cfg:  cfg,
	}
	if cfg.Domain != "" {
		c.baseURL = "https://" + cfg.Domain
	}
	return c
}

// SetBaseURL overrides the https://{domain} base derived from configuration.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

type orderEnvelope struct {
	Order models.Order `json:"order"`
}

type errorEnvelope struct {
	Errors any `json:"errors"`
}

// GetOrder fetches one order by id. A non-empty token overrides the
// configured access token. No retries, no caching.
func (c *Client) GetOrder(ctx context.Context, orderID, token string) (*models.Order, error) {
	if token == "" {
		token = c.cfg.AccessToken
	}
	if token == "" || c.baseURL == "" {
		return nil, ErrMissingCredentials
	}

	var env orderEnvelope
	var apiErr errorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Shopify-Access-Token", token).
		SetHeader("Content-Type", "application/json").
		SetResult(&env).
		SetError(&apiErr).
		Get(fmt.Sprintf("%s/admin/api/%s/orders/%s.json", c.baseURL, c.cfg.APIVersion, orderID))
	if err != nil {
		return nil, &FetchError{OrderID: orderID, Detail: err.Error()}
	}
	if resp.IsError() {
		detail := string(resp.Body())
		if apiErr.Errors != nil {
			detail = fmt.Sprintf("%v", apiErr.Errors)
		}
		return nil, &FetchError{OrderID: orderID, Status: resp.StatusCode(), Detail: detail}
	}
	return &env.Order, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCode trades an OAuth authorization code for a permanent access
// token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if c.baseURL == "" || c.cfg.APIKey == "" || c.cfg.APISecret == "" {
		return "", ErrMissingCredentials
	}

	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"client_id":     c.cfg.APIKey,
			"client_secret": c.cfg.APISecret,
			"code":          code,
		}).
		SetResult(&tok).
		Post(c.baseURL + "/admin/oauth/access_token")
	if err != nil {
		return "", fmt.Errorf("shopify: token exchange: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("shopify: token exchange: status %d: %s", resp.StatusCode(), resp.Body())
	}
	return tok.AccessToken, nil
}

// AuthorizeURL builds the app-install redirect target for a shop.
func (c *Client) AuthorizeURL(shop string) string {
	if shop == "" {
		shop = c.cfg.Domain
	}
	return fmt.Sprintf("https://%s/admin/oauth/authorize?client_id=%s&scope=%s&redirect_uri=%s",
		shop, c.cfg.APIKey, c.cfg.Scopes, c.cfg.RedirectURL)
}
