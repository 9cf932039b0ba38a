package dtos

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
)

var validate = validator.New()

const dateFormat = "2006-01-02"

type CaseDTO struct {
	CaseNumber              string           `json:"case_number" validate:"required"`
	CorrespondentCaseNumber *string          `json:"correspondent_case_number"`
	CorrespondentID         string           `json:"correspondent_id" validate:"required,uuid"`
	StartDate               string           `json:"start_date" validate:"required"`
	Country                 string           `json:"country" validate:"required"`
	MedicalReport           bool             `json:"medical_report"`
	Fee                     *decimal.Decimal `json:"fee"`
	CostUSD                 *decimal.Decimal `json:"cost_usd"`
	CostLocal               *decimal.Decimal `json:"cost_local"`
	CurrencySymbol          *string          `json:"currency_symbol"`
	ExtraAmount             *decimal.Decimal `json:"extra_amount"`
	HasInvoice              bool             `json:"has_invoice"`
	InvoiceNumber           *string          `json:"invoice_number"`
	InvoiceIssueDate        *string          `json:"invoice_issue_date"`
	InvoiceDueDate          *string          `json:"invoice_due_date"`
	InvoicePaymentDate      *string          `json:"invoice_payment_date"`
	Status                  string           `json:"status"`
	BillingStatus           string           `json:"billing_status"`
	Notes                   *string          `json:"notes"`
}

func (d *CaseDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CaseDTO) ToEntity(opts ...caserecord.Option) (*caserecord.Case, error) {
	correspondentID, err := uuid.Parse(d.CorrespondentID)
	if err != nil {
		return nil, err
	}
	startDate, err := time.Parse(dateFormat, d.StartDate)
	if err != nil {
		return nil, err
	}
	issue, err := parseOptionalDate(d.InvoiceIssueDate)
	if err != nil {
		return nil, err
	}
	due, err := parseOptionalDate(d.InvoiceDueDate)
	if err != nil {
		return nil, err
	}
	payment, err := parseOptionalDate(d.InvoicePaymentDate)
	if err != nil {
		return nil, err
	}

	all := append([]caserecord.Option{
		caserecord.WithCorrespondentCaseNumber(d.CorrespondentCaseNumber),
		caserecord.WithMedicalReport(d.MedicalReport),
		caserecord.WithFee(d.Fee),
		caserecord.WithCostUSD(d.CostUSD),
		caserecord.WithCostLocal(d.CostLocal),
		caserecord.WithCurrencySymbol(d.CurrencySymbol),
		caserecord.WithExtraAmount(d.ExtraAmount),
		caserecord.WithInvoice(d.HasInvoice, d.InvoiceNumber, issue, due, payment),
		caserecord.WithStatus(caserecord.Status(d.Status)),
		caserecord.WithBillingStatus(caserecord.BillingStatus(d.BillingStatus)),
		caserecord.WithNotes(d.Notes),
	}, opts...)

	return caserecord.New(d.CaseNumber, correspondentID, startDate, d.Country, all...), nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
