package mappers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
	"github.com/assistravel/casetrack/modules/cases/presentation/viewmodels"
)

const dateFormat = "2006-01-02"

func CorrespondentToViewModel(c *correspondent.Correspondent) *viewmodels.Correspondent {
	return &viewmodels.Correspondent{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Country: c.Country(),
		Phone:   c.Phone(),
		Email:   c.Email(),
	}
}

func CaseToViewModel(c *caserecord.Case) *viewmodels.Case {
	return &viewmodels.Case{
		ID:                      c.ID().String(),
		CaseNumber:              c.CaseNumber(),
		CorrespondentCaseNumber: c.CorrespondentCaseNumber(),
		CorrespondentID:         c.CorrespondentID().String(),
		StartDate:               c.StartDate().Format(dateFormat),
		Country:                 c.Country(),
		MedicalReport:           c.MedicalReport(),
		Fee:                     decimalToString(c.Fee()),
		CostUSD:                 decimalToString(c.CostUSD()),
		CostLocal:               decimalToString(c.CostLocal()),
		CurrencySymbol:          c.CurrencySymbol(),
		ExtraAmount:             decimalToString(c.ExtraAmount()),
		HasInvoice:              c.HasInvoice(),
		InvoiceNumber:           c.InvoiceNumber(),
		InvoiceIssueDate:        dateToString(c.InvoiceIssueDate()),
		InvoiceDueDate:          dateToString(c.InvoiceDueDate()),
		InvoicePaymentDate:      dateToString(c.InvoicePaymentDate()),
		Status:                  string(c.Status()),
		BillingStatus:           string(c.BillingStatus()),
		Notes:                   c.Notes(),
	}
}

func decimalToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func dateToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateFormat)
	return &s
}
