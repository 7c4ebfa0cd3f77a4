package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/invoice"
)

func testCompany() config.CompanyConfig {
	return config.CompanyConfig{
		Name:     "NSKL Ventures LLP",
		Brand:    "ELYTA",
		Address1: "209, Shilpin Centre, G.D. Ambekar Marg,",
		Address2: "Wadala, Mumbai, 400301",
		GSTIN:    "27AAWFN7036P1Z8",
		Phone:    "81690 96900",
		Email:    "support@elyta.in",
	}
}

func TestRenderContainsInvoiceFields(t *testing.T) {
	renderer, err := invoice.NewRenderer(testCompany())
	require.NoError(t, err)

	s := invoice.NewCalculator(testTaxConfig()).Compute(sampleOrder())
	html, err := renderer.Render(s)
	require.NoError(t, err)

	assert.Contains(t, html, "#1001")
	assert.Contains(t, html, "05-Oct-2024")
	assert.Contains(t, html, "NSKL Ventures LLP")
	assert.Contains(t, html, "ELYTA")
	assert.Contains(t, html, "Gold Ring")
	assert.Contains(t, html, "RING-22K")
	assert.Contains(t, html, "970.87")
	assert.Contains(t, html, "14.56")
	assert.Contains(t, html, "29.13")
	assert.Contains(t, html, "71131130")
	assert.Contains(t, html, "Place of Supply:</strong> Maharashtra")
	assert.Contains(t, html, "Type:</strong> B2C")
	assert.Contains(t, html, "CGST (1.5%)")
	assert.Contains(t, html, "IGST (3%)")
}

func TestRenderEmptySKUShowsDash(t *testing.T) {
	renderer, err := invoice.NewRenderer(testCompany())
	require.NoError(t, err)

	order := sampleOrder()
	order.LineItems[0].SKU = ""

	html, err := renderer.Render(invoice.NewCalculator(testTaxConfig()).Compute(order))
	require.NoError(t, err)

	assert.Contains(t, html, "<td>-</td>")
}

func TestRenderB2BShowsCustomerGSTIN(t *testing.T) {
	renderer, err := invoice.NewRenderer(testCompany())
	require.NoError(t, err)

	order := sampleOrder()
	order.BillingAddress.GSTIN = "27ABCDE1234F1Z5"

	html, err := renderer.Render(invoice.NewCalculator(testTaxConfig()).Compute(order))
	require.NoError(t, err)

	assert.Contains(t, html, "Type:</strong> B2B")
	assert.Contains(t, html, "GSTIN: 27ABCDE1234F1Z5")
}

func TestRenderMissingAddressUsesPlaceholders(t *testing.T) {
	renderer, err := invoice.NewRenderer(testCompany())
	require.NoError(t, err)

	order := sampleOrder()
	order.BillingAddress = nil
	order.ShippingAddress = nil

	html, err := renderer.Render(invoice.NewCalculator(testTaxConfig()).Compute(order))
	require.NoError(t, err)

	assert.Contains(t, html, "—")
	assert.Contains(t, html, "Place of Supply:</strong> —")
}
