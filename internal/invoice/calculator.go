package invoice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/models"
)

// Calculator derives a GST invoice summary from a Shopify order. The tax rate
// is treated as inclusive: the net amount already contains the tax, so the
// taxable value is backed out by dividing net by (1 + rate).
type Calculator struct {
	tax config.TaxConfig
}

func NewCalculator(tax config.TaxConfig) *Calculator {
	return &Calculator{tax: tax}
}

func (c *Calculator) Compute(order *models.Order) *models.InvoiceSummary {
	billing := order.Billing()
	shipping := order.Shipping()

	grandTotal := parseAmount(order.TotalPrice)

	var grossAmount float64
	rows := make([]models.InvoiceRow, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		price := parseAmount(item.Price)
		lineAmount := price * float64(item.Quantity)
		grossAmount += lineAmount
		rows = append(rows, models.InvoiceRow{
			SKU:      item.SKU,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    price,
			Amount:   lineAmount,
		})
	}

	discountAmount := grossAmount - grandTotal
	if discountAmount < 0 {
		discountAmount = 0
	}

	netAmount := grossAmount - discountAmount
	rate := c.tax.RatePercent
	taxableValue := netAmount / (1 + rate/100)
	totalTax := taxableValue * rate / 100

	var cgst, sgst, igst float64
	if shipping.Province == c.tax.SupplierState || shipping.ProvinceCode == c.tax.SupplierStateCode {
		cgst = totalTax / 2
		sgst = totalTax / 2
	} else {
		igst = totalTax
	}

	customerGSTIN := strings.TrimSpace(billing.GSTIN)
	invoiceType := "B2C"
	if customerGSTIN != "" {
		invoiceType = "B2B"
	}

	placeOfSupply := shipping.Province
	if placeOfSupply == "" {
		placeOfSupply = "—"
	}

	return &models.InvoiceSummary{
		InvoiceNumber:  order.Name,
		InvoiceDate:    order.CreatedAt.Format("02-Jan-2006"),
		InvoiceType:    invoiceType,
		PlaceOfSupply:  placeOfSupply,
		CustomerGSTIN:  customerGSTIN,
		BillToBlock:    addressBlock(billing, customerGSTIN),
		ShipToBlock:    addressBlock(shipping, ""),
		Rows:           rows,
		GrossAmount:    grossAmount,
		DiscountAmount: discountAmount,
		NetAmount:      netAmount,
		TaxableValue:   taxableValue,
		CGST:           cgst,
		SGST:           sgst,
		IGST:           igst,
		TotalTax:       totalTax,
		GrandTotal:     grandTotal,
		HSNCode:        c.tax.HSNCode,
		RatePercent:    rate,
		HalfRate:       rate / 2,
	}
}

// addressBlock builds the multi-line bill-to/ship-to text. Missing phones
// render as an em-dash; other missing fields render blank, matching the
// storefront invoice layout.
func addressBlock(a models.Address, gstin string) string {
	phone := a.Phone
	if phone == "" {
		phone = "—"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", a.FirstName, a.LastName)
	fmt.Fprintf(&b, "%s\n", phone)
	fmt.Fprintf(&b, "%s\n", a.Address1)
	fmt.Fprintf(&b, "%s, %s, %s\n", a.City, a.Province, a.Zip)
	if gstin != "" {
		fmt.Fprintf(&b, "GSTIN: %s\n", gstin)
	}
	return b.String()
}

// parseAmount parses a Shopify decimal string; missing or malformed values
// count as zero.
func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders a monetary value with two decimals, rounding half away
// from zero.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
