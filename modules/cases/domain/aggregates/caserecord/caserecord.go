package caserecord

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the case lifecycle state, independent of billing progress.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusClosed    Status = "CLOSED"
	StatusPaused    Status = "PAUSED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// BillingStatus tracks invoicing and collection progress, independent of the
// lifecycle state.
type BillingStatus string

const (
	BillingOnGoing   BillingStatus = "ON_GOING"
	BillingRebilled  BillingStatus = "REBILLED"
	BillingCollected BillingStatus = "COLLECTED"
	BillingToRebill  BillingStatus = "TO_REBILL"
	BillingNoFee     BillingStatus = "NO_FEE"
)

func (s BillingStatus) IsValid() bool {
	switch s {
	case BillingOnGoing, BillingRebilled, BillingCollected, BillingToRebill, BillingNoFee:
		return true
	}
	return false
}

type Case struct {
	id                      uuid.UUID
	caseNumber              string
	correspondentCaseNumber *string
	correspondentID         uuid.UUID
	startDate               time.Time
	country                 string
	medicalReport           bool
	fee                     *decimal.Decimal
	costUSD                 *decimal.Decimal
	costLocal               *decimal.Decimal
	currencySymbol          *string
	extraAmount             *decimal.Decimal
	hasInvoice              bool
	invoiceNumber           *string
	invoiceIssueDate        *time.Time
	invoiceDueDate          *time.Time
	invoicePaymentDate      *time.Time
	status                  Status
	billingStatus           BillingStatus
	notes                   *string
	createdAt               time.Time
	updatedAt               time.Time
}

type Option func(c *Case)

func WithID(id uuid.UUID) Option {
	return func(c *Case) { c.id = id }
}

func WithCorrespondentCaseNumber(v *string) Option {
	return func(c *Case) { c.correspondentCaseNumber = v }
}

func WithMedicalReport(v bool) Option {
	return func(c *Case) { c.medicalReport = v }
}

func WithFee(v *decimal.Decimal) Option {
	return func(c *Case) { c.fee = v }
}

func WithCostUSD(v *decimal.Decimal) Option {
	return func(c *Case) { c.costUSD = v }
}

func WithCostLocal(v *decimal.Decimal) Option {
	return func(c *Case) { c.costLocal = v }
}

func WithCurrencySymbol(v *string) Option {
	return func(c *Case) { c.currencySymbol = v }
}

func WithExtraAmount(v *decimal.Decimal) Option {
	return func(c *Case) { c.extraAmount = v }
}

func WithInvoice(hasInvoice bool, number *string, issue, due, payment *time.Time) Option {
	return func(c *Case) {
		c.hasInvoice = hasInvoice
		c.invoiceNumber = number
		c.invoiceIssueDate = issue
		c.invoiceDueDate = due
		c.invoicePaymentDate = payment
	}
}

func WithStatus(v Status) Option {
	return func(c *Case) {
		if v.IsValid() {
			c.status = v
		}
	}
}

func WithBillingStatus(v BillingStatus) Option {
	return func(c *Case) {
		if v.IsValid() {
			c.billingStatus = v
		}
	}
}

func WithNotes(v *string) Option {
	return func(c *Case) { c.notes = v }
}

func WithCreatedAt(v time.Time) Option {
	return func(c *Case) { c.createdAt = v }
}

func WithUpdatedAt(v time.Time) Option {
	return func(c *Case) { c.updatedAt = v }
}

func New(
	caseNumber string,
	correspondentID uuid.UUID,
	startDate time.Time,
	country string,
	opts ...Option,
) *Case {
	c := &Case{
		id:              uuid.New(),
		caseNumber:      strings.TrimSpace(caseNumber),
		correspondentID: correspondentID,
		startDate:       startDate,
		country:         strings.TrimSpace(country),
		status:          StatusOpen,
		billingStatus:   BillingNoFee,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Case) ID() uuid.UUID                    { return c.id }
func (c *Case) CaseNumber() string               { return c.caseNumber }
func (c *Case) CorrespondentCaseNumber() *string { return c.correspondentCaseNumber }
func (c *Case) CorrespondentID() uuid.UUID       { return c.correspondentID }
func (c *Case) StartDate() time.Time             { return c.startDate }
func (c *Case) Country() string                  { return c.country }
func (c *Case) MedicalReport() bool              { return c.medicalReport }
func (c *Case) Fee() *decimal.Decimal            { return c.fee }
func (c *Case) CostUSD() *decimal.Decimal        { return c.costUSD }
func (c *Case) CostLocal() *decimal.Decimal      { return c.costLocal }
func (c *Case) CurrencySymbol() *string          { return c.currencySymbol }
func (c *Case) ExtraAmount() *decimal.Decimal    { return c.extraAmount }
func (c *Case) HasInvoice() bool                 { return c.hasInvoice }
func (c *Case) InvoiceNumber() *string           { return c.invoiceNumber }
func (c *Case) InvoiceIssueDate() *time.Time     { return c.invoiceIssueDate }
func (c *Case) InvoiceDueDate() *time.Time       { return c.invoiceDueDate }
func (c *Case) InvoicePaymentDate() *time.Time   { return c.invoicePaymentDate }
func (c *Case) Status() Status                   { return c.status }
func (c *Case) BillingStatus() BillingStatus     { return c.billingStatus }
func (c *Case) Notes() *string                   { return c.notes }
func (c *Case) CreatedAt() time.Time             { return c.createdAt }
func (c *Case) UpdatedAt() time.Time             { return c.updatedAt }

// Close forces the lifecycle state to CLOSED. Collected cases are closed
// automatically by the service layer.
func (c *Case) Close() {
	c.status = StatusClosed
}

// SetInvoiceDueDate is used when the due date is derived from the issue date.
func (c *Case) SetInvoiceDueDate(v *time.Time) {
	c.invoiceDueDate = v
}
