package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
)

func testShopifyConfig() config.ShopifyConfig {
	return config.ShopifyConfig{
		Domain:      "demo-shop.myshopify.com",
		APIKey:      "key123",
		APISecret:   "secret123",
		RedirectURL: "https://app.example.com/auth/callback",
		AccessToken: "shpat_test_token",
		APIVersion:  "2024-10",
		Scopes:      "read_orders,write_orders",
	}
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-10/orders/450789469.json", r.URL.Path)
		assert.Equal(t, "shpat_test_token", r.Header.Get("X-Shopify-Access-Token"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order": map[string]any{
				"id":          450789469,
				"name":        "#1001",
				"total_price": "1000.00",
				"line_items": []map[string]any{
					{"sku": "RING-22K", "title": "Gold Ring", "quantity": 1, "price": "1000.00"},
				},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(testShopifyConfig())
	c.SetBaseURL(srv.URL)

	order, err := c.GetOrder(context.Background(), "450789469", "")
	require.NoError(t, err)
	assert.Equal(t, "#1001", order.Name)
	assert.Equal(t, "1000.00", order.TotalPrice)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, "Gold Ring", order.LineItems[0].Title)
}

func TestGetOrderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": "Not Found"})
	}))
	defer srv.Close()

	c := NewClient(testShopifyConfig())
	c.SetBaseURL(srv.URL)

	_, err := c.GetOrder(context.Background(), "999", "")
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, "Not Found", fetchErr.Detail)
	assert.Equal(t, "999", fetchErr.OrderID)
}

func TestGetOrderMissingCredentials(t *testing.T) {
	cfg := testShopifyConfig()
	cfg.AccessToken = ""
	c := NewClient(cfg)

	_, err := c.GetOrder(context.Background(), "1", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	cfg = testShopifyConfig()
	cfg.Domain = ""
	c = NewClient(cfg)

	_, err = c.GetOrder(context.Background(), "1", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestGetOrderSessionTokenOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shpat_session_token", r.Header.Get("X-Shopify-Access-Token"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"order": map[string]any{"name": "#1002"}})
	}))
	defer srv.Close()

	cfg := testShopifyConfig()
	cfg.AccessToken = ""
	c := NewClient(cfg)
	c.SetBaseURL(srv.URL)

	order, err := c.GetOrder(context.Background(), "2", "shpat_session_token")
	require.NoError(t, err)
	assert.Equal(t, "#1002", order.Name)
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/oauth/access_token", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "key123", body["client_id"])
		assert.Equal(t, "secret123", body["client_secret"])
		assert.Equal(t, "authcode42", body["code"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "shpat_new_token"})
	}))
	defer srv.Close()

	c := NewClient(testShopifyConfig())
	c.SetBaseURL(srv.URL)

	token, err := c.ExchangeCode(context.Background(), "authcode42")
	require.NoError(t, err)
	assert.Equal(t, "shpat_new_token", token)
}

func TestExchangeCodeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_request"}`))
	}))
	defer srv.Close()

	c := NewClient(testShopifyConfig())
	c.SetBaseURL(srv.URL)

	_, err := c.ExchangeCode(context.Background(), "expired")
	assert.Error(t, err)
}

func TestAuthorizeURL(t *testing.T) {
	c := NewClient(testShopifyConfig())

	u := c.AuthorizeURL("")
	assert.Equal(t,
		"https://demo-shop.myshopify.com/admin/oauth/authorize?client_id=key123&scope=read_orders,write_orders&redirect_uri=https://app.example.com/auth/callback",
		u)

	u = c.AuthorizeURL("other-shop.myshopify.com")
	assert.Contains(t, u, "https://other-shop.myshopify.com/admin/oauth/authorize")
}
