package persistence

import (
	"github.com/google/uuid"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence/models"
	"github.com/assistravel/casetrack/pkg/mapping"
)

func toDomainCorrespondent(m *models.Correspondent) (*correspondent.Correspondent, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	return correspondent.Hydrate(
		id,
		m.Name,
		m.Country,
		mapping.SQLNullStringToPointer(m.Phone),
		mapping.SQLNullStringToPointer(m.Email),
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainCase(m *models.Case) (*caserecord.Case, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	correspondentID, err := uuid.Parse(m.CorrespondentID)
	if err != nil {
		return nil, err
	}
	return caserecord.New(
		m.CaseNumber,
		correspondentID,
		m.StartDate,
		m.Country,
		caserecord.WithID(id),
		caserecord.WithCorrespondentCaseNumber(mapping.SQLNullStringToPointer(m.CorrespondentCaseNumber)),
		caserecord.WithMedicalReport(m.MedicalReport),
		caserecord.WithFee(mapping.NullDecimalToPointer(m.Fee)),
		caserecord.WithCostUSD(mapping.NullDecimalToPointer(m.CostUSD)),
		caserecord.WithCostLocal(mapping.NullDecimalToPointer(m.CostLocal)),
		caserecord.WithCurrencySymbol(mapping.SQLNullStringToPointer(m.CurrencySymbol)),
		caserecord.WithExtraAmount(mapping.NullDecimalToPointer(m.ExtraAmount)),
		caserecord.WithInvoice(
			m.HasInvoice,
			mapping.SQLNullStringToPointer(m.InvoiceNumber),
			mapping.SQLNullTimeToPointer(m.InvoiceIssueDate),
			mapping.SQLNullTimeToPointer(m.InvoiceDueDate),
			mapping.SQLNullTimeToPointer(m.InvoicePaymentDate),
		),
		caserecord.WithStatus(caserecord.Status(m.Status)),
		caserecord.WithBillingStatus(caserecord.BillingStatus(m.BillingStatus)),
		caserecord.WithNotes(mapping.SQLNullStringToPointer(m.Notes)),
		caserecord.WithCreatedAt(m.CreatedAt),
		caserecord.WithUpdatedAt(m.UpdatedAt),
	), nil
}
