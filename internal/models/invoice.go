package models

// InvoiceSummary is derived from an Order on every request. Monetary fields
// hold full floating precision; rounding to two decimals happens at display.
type InvoiceSummary struct {
	InvoiceNumber string
	InvoiceDate   string
	InvoiceType   string // "B2B" when the billing address carries a GSTIN, else "B2C"
	PlaceOfSupply string
	CustomerGSTIN string

	BillToBlock string
	ShipToBlock string

	Rows []InvoiceRow

	GrossAmount    float64
	DiscountAmount float64
	NetAmount      float64
	TaxableValue   float64
	CGST           float64
	SGST           float64
	IGST           float64
	TotalTax       float64
	GrandTotal     float64

	HSNCode     string
	RatePercent float64
	HalfRate    float64
}

// InvoiceRow is one rendered line of the items table; row order follows the
// order's line items.
type InvoiceRow struct {
	SKU      string
	Title    string
	Quantity int
	Price    float64
	Amount   float64
}
