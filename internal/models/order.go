package models

import "time"

// Order mirrors the order object returned by the Shopify Admin API.
// It is fetched per request and never persisted.
type Order struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	CreatedAt       time.Time  `json:"created_at"`
	TotalPrice      string     `json:"total_price"`
	BillingAddress  *Address   `json:"billing_address"`
	ShippingAddress *Address   `json:"shipping_address"`
	LineItems       []LineItem `json:"line_items"`
}

type Address struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Address1     string `json:"address1"`
	City         string `json:"city"`
	Province     string `json:"province"`
	ProvinceCode string `json:"province_code"`
	Zip          string `json:"zip"`
	GSTIN        string `json:"gstin"`
}

type LineItem struct {
	SKU      string `json:"sku"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// Billing returns the billing address, or an empty one if Shopify omitted it.
func (o *Order) Billing() Address {
	if o.BillingAddress == nil {
		return Address{}
	}
	return *o.BillingAddress
}

// Shipping returns the shipping address, or an empty one if Shopify omitted it.
func (o *Order) Shipping() Address {
	if o.ShippingAddress == nil {
		return Address{}
	}
	return *o.ShippingAddress
}
