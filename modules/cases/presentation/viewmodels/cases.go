package viewmodels

type Correspondent struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

type Case struct {
	ID                      string  `json:"id"`
	CaseNumber              string  `json:"case_number"`
	CorrespondentCaseNumber *string `json:"correspondent_case_number,omitempty"`
	CorrespondentID         string  `json:"correspondent_id"`
	StartDate               string  `json:"start_date"`
	Country                 string  `json:"country"`
	MedicalReport           bool    `json:"medical_report"`
	Fee                     *string `json:"fee,omitempty"`
	CostUSD                 *string `json:"cost_usd,omitempty"`
	CostLocal               *string `json:"cost_local,omitempty"`
	CurrencySymbol          *string `json:"currency_symbol,omitempty"`
	ExtraAmount             *string `json:"extra_amount,omitempty"`
	HasInvoice              bool    `json:"has_invoice"`
	InvoiceNumber           *string `json:"invoice_number,omitempty"`
	InvoiceIssueDate        *string `json:"invoice_issue_date,omitempty"`
	InvoiceDueDate          *string `json:"invoice_due_date,omitempty"`
	InvoicePaymentDate      *string `json:"invoice_payment_date,omitempty"`
	Status                  string  `json:"status"`
	BillingStatus           string  `json:"billing_status"`
	Notes                   *string `json:"notes,omitempty"`
}
