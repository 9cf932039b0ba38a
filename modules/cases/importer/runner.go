package importer

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
)

// Runner drives the normalizer over every data row of a parsed sheet and
// writes the results through the case repository.
//
// Atomicity is deliberately mixed: the caller wraps Run in a single storage
// transaction, so an infrastructure failure (returned as a non-nil error)
// rolls back the whole batch, while per-row validation failures are only
// recorded in the result and never abort the run.
type Runner struct {
	normalizer *Normalizer
	resolver   *CorrespondentResolver
	cases      caserecord.Repository
}

func NewRunner(
	normalizer *Normalizer,
	resolver *CorrespondentResolver,
	cases caserecord.Repository,
) *Runner {
	return &Runner{
		normalizer: normalizer,
		resolver:   resolver,
		cases:      cases,
	}
}

// Run processes the full sheet: row 0 is the header, rows 1..N are data.
// A non-nil error means the file was malformed or storage failed; per-row
// problems are reported through the result only.
func (r *Runner) Run(ctx context.Context, rows [][]any) (*Result, error) {
	headers, err := validateHeaders(rows)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, raw := range rows[1:] {
		rowNum := i + 2 // 1-based, header is row 1
		row := buildRow(headers, raw)
		if len(row) == 0 {
			continue
		}

		result.Processed++

		normalized, err := r.normalizer.Normalize(row)
		if err != nil {
			result.Failed++
			result.errorf("row %d: %v", rowNum, err)
			continue
		}
		result.Warnings = append(result.Warnings, normalized.Warnings...)

		correspondentID, created, err := r.resolver.Resolve(ctx, normalized.CorrespondentName, normalized.Country)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: failed to resolve correspondent %q", rowNum, normalized.CorrespondentName)
		}
		if created {
			result.logf("row %d: created correspondent %q", rowNum, normalized.CorrespondentName)
		}

		exists, err := r.cases.ExistsByCaseNumber(ctx, normalized.CaseNumber)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: failed to check case %q", rowNum, normalized.CaseNumber)
		}
		if exists {
			result.Skipped++
			result.logf("row %d: case %s already exists, skipped", rowNum, normalized.CaseNumber)
			continue
		}

		entity := caserecord.New(
			normalized.CaseNumber,
			correspondentID,
			normalized.StartDate,
			normalized.Country,
			caserecord.WithCorrespondentCaseNumber(normalized.CorrespondentCaseNumber),
			caserecord.WithMedicalReport(normalized.MedicalReport),
			caserecord.WithFee(normalized.Fee),
			caserecord.WithCostUSD(normalized.CostUSD),
			caserecord.WithCostLocal(normalized.CostLocal),
			caserecord.WithCurrencySymbol(normalized.CurrencySymbol),
			caserecord.WithExtraAmount(normalized.ExtraAmount),
			caserecord.WithInvoice(
				normalized.HasInvoice,
				normalized.InvoiceNumber,
				normalized.InvoiceIssueDate,
				normalized.InvoiceDueDate,
				normalized.InvoicePaymentDate,
			),
			caserecord.WithStatus(normalized.Status),
			caserecord.WithBillingStatus(normalized.BillingStatus),
			caserecord.WithNotes(normalized.Notes),
		)
		if _, err := r.cases.Create(ctx, entity); err != nil {
			return nil, errors.Wrapf(err, "row %d: failed to create case %q", rowNum, normalized.CaseNumber)
		}
		result.Created++
		result.logf("row %d: created case %s", rowNum, normalized.CaseNumber)
	}

	// Duplicate skips are informational; only validation failures count
	// against the run.
	result.Success = result.Failed == 0
	return result, nil
}

func validateHeaders(rows [][]any) ([]string, error) {
	if len(rows) < 2 {
		return nil, &StructuralError{Reason: "sheet has no data rows"}
	}

	headers := make([]string, len(rows[0]))
	present := make(map[string]struct{}, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = NormalizeHeader(cellString(cell))
		present[headers[i]] = struct{}{}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &StructuralError{Reason: "missing required column(s)", MissingHeaders: missing}
	}
	return headers, nil
}

// buildRow zips header names with cell values, dropping empty cells so a
// fully blank row comes back empty and is not counted.
func buildRow(headers []string, raw []any) Row {
	row := make(Row, len(headers))
	for i, header := range headers {
		if header == "" || i >= len(raw) {
			continue
		}
		if isEmptyCell(raw[i]) {
			continue
		}
		row[header] = raw[i]
	}
	return row
}
