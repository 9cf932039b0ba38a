package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
	"github.com/assistravel/casetrack/pkg/composables"
)

// noRowsTx answers every single-row query with pgx.ErrNoRows, standing in
// for an UPDATE ... RETURNING that matched nothing.
type noRowsTx struct {
	pgx.Tx
}

func (noRowsTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(dest ...any) error {
	return pgx.ErrNoRows
}

func noRowsContext() context.Context {
	return composables.WithTx(context.Background(), noRowsTx{})
}

func TestCaseRepository_UpdateMissingCaseMapsToNotFound(t *testing.T) {
	repo := NewCaseRepository()

	entity := caserecord.New(
		"AT-1001",
		uuid.New(),
		time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
		"Argentina",
	)
	_, err := repo.Update(noRowsContext(), entity)
	require.ErrorIs(t, err, ErrCaseNotFound)
}

func TestCorrespondentRepository_UpdateMissingCorrespondentMapsToNotFound(t *testing.T) {
	repo := NewCorrespondentRepository()

	_, err := repo.Update(noRowsContext(), correspondent.New("Global Assist", "Argentina"))
	require.ErrorIs(t, err, ErrCorrespondentNotFound)
}
