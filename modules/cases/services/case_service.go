package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/pkg/eventbus"
)

type CaseService struct {
	repo      caserecord.Repository
	publisher eventbus.EventBus
}

func NewCaseService(repo caserecord.Repository, publisher eventbus.EventBus) *CaseService {
	return &CaseService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *CaseService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *CaseService) GetPaginated(ctx context.Context, params *caserecord.FindParams) ([]*caserecord.Case, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *CaseService) GetByID(ctx context.Context, id uuid.UUID) (*caserecord.Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CaseService) GetByCaseNumber(ctx context.Context, caseNumber string) (*caserecord.Case, error) {
	return s.repo.GetByCaseNumber(ctx, caseNumber)
}

func (s *CaseService) Create(ctx context.Context, data *caserecord.Case) (*caserecord.Case, error) {
	applyBillingRules(data)
	created, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish("case.created", created)
	return created, nil
}

func (s *CaseService) Update(ctx context.Context, data *caserecord.Case) (*caserecord.Case, error) {
	applyBillingRules(data)
	updated, err := s.repo.Update(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish("case.updated", updated)
	return updated, nil
}

func (s *CaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish("case.deleted", id)
	return nil
}

// applyBillingRules enforces the two invoicing rules: a collected case is
// closed, and an issued invoice without a due date falls due 30 days after
// issue. Imported rows bypass these rules and keep their values verbatim.
func applyBillingRules(c *caserecord.Case) {
	if c.BillingStatus() == caserecord.BillingCollected {
		c.Close()
	}
	if c.HasInvoice() && c.InvoiceIssueDate() != nil && c.InvoiceDueDate() == nil {
		due := c.InvoiceIssueDate().AddDate(0, 0, 30)
		c.SetInvoiceDueDate(&due)
	}
}
