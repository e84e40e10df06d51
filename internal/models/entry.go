package models

import "time"

// Financial entry types.
const (
	EntryQuotation = "Quotation"
	EntryInvoice   = "Invoice"
	EntryPurchase  = "Purchase"
	EntryGoodsExp  = "Goods Exp"
	EntryCashExp   = "Cash Exp"
)

// EntryTypes lists every valid entry type.
var EntryTypes = []string{EntryQuotation, EntryInvoice, EntryPurchase, EntryGoodsExp, EntryCashExp}

// LineItem is one row of an entry's description. Quantity and rate stay
// strings to match the legacy display contract; unparsable values count
// as zero when the total is computed.
type LineItem struct {
	Item         string `json:"item"`
	Denomination string `json:"denomination"`
	Quantity     string `json:"quantity"`
	Rate         string `json:"rate"`
}

// Entry is a financial record (quotation, invoice, purchase or expense).
// The per-type optional fields are typed instead of the free-form map the
// legacy system used; one polymorphic list still serves every type.
// Total is derived server-side and stored as a 2-decimal string.
type Entry struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Type           string     `gorm:"size:16;index;not null" json:"type"`
	CompanyName    string     `gorm:"size:128" json:"company_name"`
	QuotationNo    string     `gorm:"size:64" json:"quotation_no,omitempty"`
	InvoiceNo      string     `gorm:"size:64" json:"invoice_no,omitempty"`
	ReferenceNo    string     `gorm:"size:64" json:"reference_no,omitempty"`
	BuyingCompany  string     `gorm:"size:128" json:"buying_company,omitempty"`
	SellingCompany string     `gorm:"size:128" json:"selling_company,omitempty"`
	Mop            string     `gorm:"size:32" json:"mop,omitempty"`
	SNo            string     `gorm:"size:32" json:"s_no,omitempty"`
	Amount         string     `gorm:"size:32" json:"amount,omitempty"`
	Unit           string     `gorm:"size:64;index;not null" json:"unit"`
	Date           string     `gorm:"size:16" json:"date"` // dd-mm-yyyy display format
	Description    []LineItem `gorm:"serializer:json" json:"description"`
	Total          string     `gorm:"size:32;not null" json:"total"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
