package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/pkg/eventbus"
	"github.com/assistravel/casetrack/pkg/mapping"
)

type caseRepoStub struct {
	caserecord.Repository
	created *caserecord.Case
	updated *caserecord.Case
}

func (r *caseRepoStub) Create(ctx context.Context, c *caserecord.Case) (*caserecord.Case, error) {
	r.created = c
	return c, nil
}

func (r *caseRepoStub) Update(ctx context.Context, c *caserecord.Case) (*caserecord.Case, error) {
	r.updated = c
	return c, nil
}

func testPublisher() eventbus.EventBus {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return eventbus.NewEventPublisher(log)
}

func newOpenCase(t *testing.T, opts ...caserecord.Option) *caserecord.Case {
	t.Helper()
	return caserecord.New(
		"AT-1001",
		uuid.New(),
		time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
		"Argentina",
		opts...,
	)
}

func TestCaseService_CollectedCaseIsClosed(t *testing.T) {
	repo := &caseRepoStub{}
	svc := NewCaseService(repo, testPublisher())

	entity := newOpenCase(t, caserecord.WithBillingStatus(caserecord.BillingCollected))
	created, err := svc.Create(context.Background(), entity)
	require.NoError(t, err)
	require.Equal(t, caserecord.StatusClosed, created.Status())
	require.Same(t, entity, repo.created)
}

func TestCaseService_OpenCaseStaysOpen(t *testing.T) {
	repo := &caseRepoStub{}
	svc := NewCaseService(repo, testPublisher())

	created, err := svc.Create(context.Background(), newOpenCase(t))
	require.NoError(t, err)
	require.Equal(t, caserecord.StatusOpen, created.Status())
}

func TestCaseService_MissingDueDateDefaultsToThirtyDays(t *testing.T) {
	repo := &caseRepoStub{}
	svc := NewCaseService(repo, testPublisher())

	issue := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	entity := newOpenCase(t, caserecord.WithInvoice(true, mapping.Pointer("F-001"), &issue, nil, nil))

	updated, err := svc.Update(context.Background(), entity)
	require.NoError(t, err)
	require.NotNil(t, updated.InvoiceDueDate())
	require.Equal(t, issue.AddDate(0, 0, 30), *updated.InvoiceDueDate())
}

func TestCaseService_ExplicitDueDateIsKept(t *testing.T) {
	repo := &caseRepoStub{}
	svc := NewCaseService(repo, testPublisher())

	issue := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC)
	entity := newOpenCase(t, caserecord.WithInvoice(true, mapping.Pointer("F-001"), &issue, &due, nil))

	updated, err := svc.Update(context.Background(), entity)
	require.NoError(t, err)
	require.NotNil(t, updated.InvoiceDueDate())
	require.Equal(t, due, *updated.InvoiceDueDate())
}
