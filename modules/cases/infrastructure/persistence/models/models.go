package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Correspondent struct {
	ID        string
	Name      string
	Country   string
	Phone     sql.NullString
	Email     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Case struct {
	ID                      string
	CaseNumber              string
	CorrespondentCaseNumber sql.NullString
	CorrespondentID         string
	StartDate               time.Time
	Country                 string
	MedicalReport           bool
	Fee                     decimal.NullDecimal
	CostUSD                 decimal.NullDecimal
	CostLocal               decimal.NullDecimal
	CurrencySymbol          sql.NullString
	ExtraAmount             decimal.NullDecimal
	HasInvoice              bool
	InvoiceNumber           sql.NullString
	InvoiceIssueDate        sql.NullTime
	InvoiceDueDate          sql.NullTime
	InvoicePaymentDate      sql.NullTime
	Status                  string
	BillingStatus           string
	Notes                   sql.NullString
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
