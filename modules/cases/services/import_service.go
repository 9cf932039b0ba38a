package services

import (
	"context"
	"io"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
	"github.com/assistravel/casetrack/modules/cases/importer"
	"github.com/assistravel/casetrack/pkg/composables"
	"github.com/assistravel/casetrack/pkg/eventbus"
	"github.com/assistravel/casetrack/pkg/metrics"
)

// inTxFn is swapped out in tests.
var inTxFn = composables.InTxResult[*importer.Result]

type ImportService struct {
	cases          caserecord.Repository
	correspondents correspondent.Repository
	normalizer     *importer.Normalizer
	publisher      eventbus.EventBus
}

func NewImportService(
	cases caserecord.Repository,
	correspondents correspondent.Repository,
	normalizer *importer.Normalizer,
	publisher eventbus.EventBus,
) *ImportService {
	return &ImportService{
		cases:          cases,
		correspondents: correspondents,
		normalizer:     normalizer,
		publisher:      publisher,
	}
}

// ImportFile parses a spreadsheet and runs the import. The whole batch
// runs inside one transaction: storage failures roll everything back,
// per-row validation failures only show up in the result.
func (s *ImportService) ImportFile(ctx context.Context, file io.Reader) (*importer.Result, error) {
	rows, err := importer.ReadRows(file)
	if err != nil {
		return nil, err
	}
	return s.ImportRows(ctx, rows)
}

// ImportRows runs the import over already-parsed rows (header first).
func (s *ImportService) ImportRows(ctx context.Context, rows [][]any) (*importer.Result, error) {
	result, err := inTxFn(ctx, func(txCtx context.Context) (*importer.Result, error) {
		known, err := s.correspondents.GetAll(txCtx)
		if err != nil {
			return nil, err
		}
		resolver := importer.NewCorrespondentResolver(s.correspondents, known)
		runner := importer.NewRunner(s.normalizer, resolver, s.cases)
		return runner.Run(txCtx, rows)
	})
	if err != nil {
		metrics.ImportRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	outcome := "success"
	if !result.Success {
		outcome = "partial"
	}
	metrics.ImportRunsTotal.WithLabelValues(outcome).Inc()
	metrics.ImportRowsTotal.WithLabelValues("created").Add(float64(result.Created))
	metrics.ImportRowsTotal.WithLabelValues("skipped").Add(float64(result.Skipped))
	metrics.ImportRowsTotal.WithLabelValues("failed").Add(float64(result.Failed))

	s.publisher.Publish("cases.imported", result)
	return result, nil
}
