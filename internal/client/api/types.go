package api

import "time"

// Wire types mirror the server's JSON; the client deliberately does not
// import the server's gorm models.

type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type Profile struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LineItem struct {
	Item         string `json:"item"`
	Denomination string `json:"denomination"`
	Quantity     string `json:"quantity"`
	Rate         string `json:"rate"`
}

type Entry struct {
	ID             uint       `json:"id"`
	Type           string     `json:"type"`
	CompanyName    string     `json:"company_name"`
	QuotationNo    string     `json:"quotation_no,omitempty"`
	InvoiceNo      string     `json:"invoice_no,omitempty"`
	ReferenceNo    string     `json:"reference_no,omitempty"`
	BuyingCompany  string     `json:"buying_company,omitempty"`
	SellingCompany string     `json:"selling_company,omitempty"`
	Mop            string     `json:"mop,omitempty"`
	SNo            string     `json:"s_no,omitempty"`
	Amount         string     `json:"amount,omitempty"`
	Unit           string     `json:"unit"`
	Date           string     `json:"date"`
	Description    []LineItem `json:"description"`
	Total          string     `json:"total"`
	CreatedAt      time.Time  `json:"created_at"`
}

// EntryFilter narrows ListEntries server-side. Zero values mean "all".
type EntryFilter struct {
	Unit string
	No   string
	From string
	To   string
}

type Unit struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

type Todo struct {
	ID        uint   `json:"id"`
	User      string `json:"user"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type ScheduleEvent struct {
	ID   uint   `json:"id"`
	Date string `json:"date"`
	Text string `json:"text"`
}

type LogEntry struct {
	ID          uint   `json:"id"`
	Action      string `json:"action"`
	PerformedBy string `json:"performedBy"`
	Timestamp   string `json:"timestamp"`
}
