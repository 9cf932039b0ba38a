package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence/models"
	"github.com/assistravel/casetrack/pkg/composables"
	"github.com/assistravel/casetrack/pkg/mapping"
)

var (
	ErrCaseNotFound = fmt.Errorf("case not found")
)

const (
	caseFindQuery = `
		SELECT id, case_number, correspondent_case_number, correspondent_id, start_date,
			country, medical_report, fee, cost_usd, cost_local, currency_symbol,
			extra_amount, has_invoice, invoice_number, invoice_issue_date,
			invoice_due_date, invoice_payment_date, status, billing_status, notes,
			created_at, updated_at
		FROM cases`
)

type CaseRepository struct{}

func NewCaseRepository() caserecord.Repository {
	return &CaseRepository{}
}

func (r *CaseRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM cases`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count cases")
	}
	return count, nil
}

func (r *CaseRepository) GetPaginated(ctx context.Context, params *caserecord.FindParams) ([]*caserecord.Case, error) {
	query := caseFindQuery
	args := []any{}
	if params.Query != "" {
		query += " WHERE case_number ILIKE $1 OR country ILIKE $1"
		args = append(args, "%"+params.Query+"%")
	}
	query += fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)
	return r.queryCases(ctx, query, args...)
}

func (r *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*caserecord.Case, error) {
	cases, err := r.queryCases(ctx, caseFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, ErrCaseNotFound
	}
	return cases[0], nil
}

func (r *CaseRepository) GetByCaseNumber(ctx context.Context, caseNumber string) (*caserecord.Case, error) {
	cases, err := r.queryCases(ctx, caseFindQuery+" WHERE case_number = $1", caseNumber)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, ErrCaseNotFound
	}
	return cases[0], nil
}

func (r *CaseRepository) ExistsByCaseNumber(ctx context.Context, caseNumber string) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := tx.QueryRow(
		ctx, `SELECT EXISTS(SELECT 1 FROM cases WHERE case_number = $1)`, caseNumber,
	).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "failed to check case existence")
	}
	return exists, nil
}

func (r *CaseRepository) Create(ctx context.Context, c *caserecord.Case) (*caserecord.Case, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO cases (
			id, case_number, correspondent_case_number, correspondent_id, start_date,
			country, medical_report, fee, cost_usd, cost_local, currency_symbol,
			extra_amount, has_invoice, invoice_number, invoice_issue_date,
			invoice_due_date, invoice_payment_date, status, billing_status, notes,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id
	`
	now := time.Now()
	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		c.ID().String(),
		c.CaseNumber(),
		mapping.PointerToSQLNullString(c.CorrespondentCaseNumber()),
		c.CorrespondentID().String(),
		c.StartDate(),
		c.Country(),
		c.MedicalReport(),
		mapping.PointerToNullDecimal(c.Fee()),
		mapping.PointerToNullDecimal(c.CostUSD()),
		mapping.PointerToNullDecimal(c.CostLocal()),
		mapping.PointerToSQLNullString(c.CurrencySymbol()),
		mapping.PointerToNullDecimal(c.ExtraAmount()),
		c.HasInvoice(),
		mapping.PointerToSQLNullString(c.InvoiceNumber()),
		mapping.PointerToSQLNullTime(c.InvoiceIssueDate()),
		mapping.PointerToSQLNullTime(c.InvoiceDueDate()),
		mapping.PointerToSQLNullTime(c.InvoicePaymentDate()),
		string(c.Status()),
		string(c.BillingStatus()),
		mapping.PointerToSQLNullString(c.Notes()),
		now,
		now,
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert case")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *CaseRepository) Update(ctx context.Context, c *caserecord.Case) (*caserecord.Case, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE cases SET
			case_number = $1, correspondent_case_number = $2, correspondent_id = $3,
			start_date = $4, country = $5, medical_report = $6, fee = $7, cost_usd = $8,
			cost_local = $9, currency_symbol = $10, extra_amount = $11, has_invoice = $12,
			invoice_number = $13, invoice_issue_date = $14, invoice_due_date = $15,
			invoice_payment_date = $16, status = $17, billing_status = $18, notes = $19,
			updated_at = $20
		WHERE id = $21
		RETURNING id
	`
	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		c.CaseNumber(),
		mapping.PointerToSQLNullString(c.CorrespondentCaseNumber()),
		c.CorrespondentID().String(),
		c.StartDate(),
		c.Country(),
		c.MedicalReport(),
		mapping.PointerToNullDecimal(c.Fee()),
		mapping.PointerToNullDecimal(c.CostUSD()),
		mapping.PointerToNullDecimal(c.CostLocal()),
		mapping.PointerToSQLNullString(c.CurrencySymbol()),
		mapping.PointerToNullDecimal(c.ExtraAmount()),
		c.HasInvoice(),
		mapping.PointerToSQLNullString(c.InvoiceNumber()),
		mapping.PointerToSQLNullTime(c.InvoiceIssueDate()),
		mapping.PointerToSQLNullTime(c.InvoiceDueDate()),
		mapping.PointerToSQLNullTime(c.InvoicePaymentDate()),
		string(c.Status()),
		string(c.BillingStatus()),
		mapping.PointerToSQLNullString(c.Notes()),
		time.Now(),
		c.ID().String(),
	).Scan(&idStr); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, errors.Wrap(err, "failed to update case")
	}
	return r.GetByID(ctx, c.ID())
}

func (r *CaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id.String())
	return err
}

func (r *CaseRepository) queryCases(ctx context.Context, query string, args ...any) ([]*caserecord.Case, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var result []*caserecord.Case
	for rows.Next() {
		var m models.Case
		if err := rows.Scan(
			&m.ID,
			&m.CaseNumber,
			&m.CorrespondentCaseNumber,
			&m.CorrespondentID,
			&m.StartDate,
			&m.Country,
			&m.MedicalReport,
			&m.Fee,
			&m.CostUSD,
			&m.CostLocal,
			&m.CurrencySymbol,
			&m.ExtraAmount,
			&m.HasInvoice,
			&m.InvoiceNumber,
			&m.InvoiceIssueDate,
			&m.InvoiceDueDate,
			&m.InvoicePaymentDate,
			&m.Status,
			&m.BillingStatus,
			&m.Notes,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan case row")
		}
		entity, err := toDomainCase(&m)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return result, nil
}
