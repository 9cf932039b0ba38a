package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
)

type memCorrespondentRepo struct {
	byName  map[string]*correspondent.Correspondent
	failOn  string
	creates int
}

func newMemCorrespondentRepo() *memCorrespondentRepo {
	return &memCorrespondentRepo{byName: map[string]*correspondent.Correspondent{}}
}

func (r *memCorrespondentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byName)), nil
}

func (r *memCorrespondentRepo) GetAll(ctx context.Context) ([]*correspondent.Correspondent, error) {
	out := make([]*correspondent.Correspondent, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCorrespondentRepo) GetPaginated(ctx context.Context, params *correspondent.FindParams) ([]*correspondent.Correspondent, error) {
	return r.GetAll(ctx)
}

func (r *memCorrespondentRepo) GetByID(ctx context.Context, id uuid.UUID) (*correspondent.Correspondent, error) {
	for _, c := range r.byName {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *memCorrespondentRepo) GetByName(ctx context.Context, name string) (*correspondent.Correspondent, error) {
	if c, ok := r.byName[strings.ToLower(name)]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (r *memCorrespondentRepo) Create(ctx context.Context, c *correspondent.Correspondent) (*correspondent.Correspondent, error) {
	if r.failOn != "" && strings.EqualFold(c.Name(), r.failOn) {
		return nil, errStorage
	}
	r.creates++
	r.byName[strings.ToLower(c.Name())] = c
	return c, nil
}

func (r *memCorrespondentRepo) Update(ctx context.Context, c *correspondent.Correspondent) (*correspondent.Correspondent, error) {
	r.byName[strings.ToLower(c.Name())] = c
	return c, nil
}

func (r *memCorrespondentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type memCaseRepo struct {
	byNumber     map[string]*caserecord.Case
	failCreateOn string
	failExists   bool
}

func newMemCaseRepo() *memCaseRepo {
	return &memCaseRepo{byNumber: map[string]*caserecord.Case{}}
}

func (r *memCaseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byNumber)), nil
}

func (r *memCaseRepo) GetPaginated(ctx context.Context, params *caserecord.FindParams) ([]*caserecord.Case, error) {
	out := make([]*caserecord.Case, 0, len(r.byNumber))
	for _, c := range r.byNumber {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*caserecord.Case, error) {
	for _, c := range r.byNumber {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *memCaseRepo) GetByCaseNumber(ctx context.Context, caseNumber string) (*caserecord.Case, error) {
	if c, ok := r.byNumber[caseNumber]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (r *memCaseRepo) ExistsByCaseNumber(ctx context.Context, caseNumber string) (bool, error) {
	if r.failExists {
		return false, errStorage
	}
	_, ok := r.byNumber[caseNumber]
	return ok, nil
}

func (r *memCaseRepo) Create(ctx context.Context, c *caserecord.Case) (*caserecord.Case, error) {
	if r.failCreateOn != "" && c.CaseNumber() == r.failCreateOn {
		return nil, errStorage
	}
	r.byNumber[c.CaseNumber()] = c
	return c, nil
}

func (r *memCaseRepo) Update(ctx context.Context, c *caserecord.Case) (*caserecord.Case, error) {
	r.byNumber[c.CaseNumber()] = c
	return c, nil
}

func (r *memCaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

var (
	errNotFound = &testError{"not found"}
	errStorage  = &testError{"storage down"}
)

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func sheetHeaders() []any {
	return []any{
		"Nro Caso Assistravel",
		"Corresponsal ID",
		"Fecha de Inicio",
		"Pais",
		"Estado Interno",
		"Estado del Caso",
		"Fee",
	}
}

func newTestRunner(caseRepo *memCaseRepo, corrRepo *memCorrespondentRepo) *Runner {
	known, _ := corrRepo.GetAll(context.Background())
	return NewRunner(
		testNormalizer(),
		NewCorrespondentResolver(corrRepo, known),
		caseRepo,
	)
}

func TestRunner_MixedBatch(t *testing.T) {
	ctx := context.Background()
	corrRepo := newMemCorrespondentRepo()
	existing := correspondent.New("Global Assist", "Argentina")
	_, err := corrRepo.Create(ctx, existing)
	require.NoError(t, err)
	corrRepo.creates = 0

	caseRepo := newMemCaseRepo()
	dup := caserecord.New("AT-2000", existing.ID(), fixedNow(), "Argentina")
	_, err = caseRepo.Create(ctx, dup)
	require.NoError(t, err)

	rows := [][]any{
		sheetHeaders(),
		{"AT-1001", "Global Assist", "2023-01-05", "Argentina", "Abierto", "On Going", "USD 1,234.50"},
		{"", "Global Assist", "2023-01-06", "Argentina", "Abierto", "On Going", ""}, // missing case number
		{"AT-2000", "Global Assist", "2023-01-07", "Argentina", "Cerrado", "Cobrado", ""},
	}

	result, err := newTestRunner(caseRepo, corrRepo).Run(ctx, rows)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, 3, result.Processed)
	require.Equal(t, 1, result.Created)
	require.Equal(t, 1, result.Skipped)
	require.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "row 3")
	require.Contains(t, result.Log, "row 4: case AT-2000 already exists, skipped")
	require.Zero(t, corrRepo.creates)

	created, err := caseRepo.GetByCaseNumber(ctx, "AT-1001")
	require.NoError(t, err)
	require.Equal(t, existing.ID(), created.CorrespondentID())
	require.Equal(t, caserecord.StatusOpen, created.Status())
	require.Equal(t, caserecord.BillingOnGoing, created.BillingStatus())
	require.NotNil(t, created.Fee())
	require.Equal(t, "1234.5", created.Fee().String())
}

func TestRunner_Rerun_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	corrRepo := newMemCorrespondentRepo()
	caseRepo := newMemCaseRepo()

	rows := [][]any{
		sheetHeaders(),
		{"AT-1001", "Med Partners", "2023-01-05", "Chile", "Abierto", "No Fee", ""},
		{"AT-1002", "Med Partners", "2023-01-06", "Chile", "Abierto", "No Fee", ""},
	}

	first, err := newTestRunner(caseRepo, corrRepo).Run(ctx, rows)
	require.NoError(t, err)
	require.True(t, first.Success)
	require.Equal(t, 2, first.Created)
	require.Equal(t, 1, corrRepo.creates, "one correspondent per distinct new name")

	second, err := newTestRunner(caseRepo, corrRepo).Run(ctx, rows)
	require.NoError(t, err)
	require.True(t, second.Success)
	require.Zero(t, second.Created)
	require.Equal(t, 2, second.Skipped)
	require.Equal(t, 1, corrRepo.creates)
}

func TestRunner_CorrespondentMatchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	corrRepo := newMemCorrespondentRepo()
	existing := correspondent.New("Global Assist", "Argentina")
	_, err := corrRepo.Create(ctx, existing)
	require.NoError(t, err)
	corrRepo.creates = 0

	caseRepo := newMemCaseRepo()
	rows := [][]any{
		sheetHeaders(),
		{"AT-1001", "GLOBAL ASSIST", "2023-01-05", "Argentina", "Abierto", "No Fee", ""},
	}

	result, err := newTestRunner(caseRepo, corrRepo).Run(ctx, rows)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Zero(t, corrRepo.creates)

	created, err := caseRepo.GetByCaseNumber(ctx, "AT-1001")
	require.NoError(t, err)
	require.Equal(t, existing.ID(), created.CorrespondentID())
}

func TestRunner_BlankRowsAreNotCounted(t *testing.T) {
	ctx := context.Background()
	corrRepo := newMemCorrespondentRepo()
	caseRepo := newMemCaseRepo()

	rows := [][]any{
		sheetHeaders(),
		{"", "", "", "", "", "", ""},
		{"AT-1001", "Med Partners", "2023-01-05", "Chile", "Abierto", "No Fee", ""},
		{nil, nil, nil, nil, nil, nil, nil},
	}

	result, err := newTestRunner(caseRepo, corrRepo).Run(ctx, rows)
	require.NoError(t, err)
	require.Equal(t, 1, result.Processed)
	require.Equal(t, 1, result.Created)
	// Row numbers still count the blank line.
	require.Contains(t, result.Log, "row 3: created case AT-1001")
}

func TestRunner_StructuralFailures(t *testing.T) {
	ctx := context.Background()
	runner := newTestRunner(newMemCaseRepo(), newMemCorrespondentRepo())

	t.Run("NoDataRows", func(t *testing.T) {
		_, err := runner.Run(ctx, [][]any{sheetHeaders()})
		var structural *StructuralError
		require.ErrorAs(t, err, &structural)
		require.Equal(t, "sheet has no data rows", structural.Reason)
	})

	t.Run("MissingRequiredHeader", func(t *testing.T) {
		rows := [][]any{
			{"Nro Caso Assistravel", "Fecha de Inicio", "Pais", "Estado Interno", "Estado del Caso"},
			{"AT-1001", "2023-01-05", "Chile", "Abierto", "No Fee"},
		}
		_, err := runner.Run(ctx, rows)
		var structural *StructuralError
		require.ErrorAs(t, err, &structural)
		require.Equal(t, []string{ColCorrespondent}, structural.MissingHeaders)
	})
}

func TestRunner_StorageFailureAbortsRun(t *testing.T) {
	ctx := context.Background()

	rows := [][]any{
		sheetHeaders(),
		{"AT-1001", "Med Partners", "2023-01-05", "Chile", "Abierto", "No Fee", ""},
	}

	t.Run("CreateCase", func(t *testing.T) {
		caseRepo := newMemCaseRepo()
		caseRepo.failCreateOn = "AT-1001"
		result, err := newTestRunner(caseRepo, newMemCorrespondentRepo()).Run(ctx, rows)
		require.Nil(t, result)
		require.ErrorIs(t, err, errStorage)
		require.Contains(t, err.Error(), "AT-1001")
	})

	t.Run("CreateCorrespondent", func(t *testing.T) {
		corrRepo := newMemCorrespondentRepo()
		corrRepo.failOn = "Med Partners"
		result, err := newTestRunner(newMemCaseRepo(), corrRepo).Run(ctx, rows)
		require.Nil(t, result)
		require.ErrorIs(t, err, errStorage)
	})

	t.Run("ExistsCheck", func(t *testing.T) {
		caseRepo := newMemCaseRepo()
		caseRepo.failExists = true
		result, err := newTestRunner(caseRepo, newMemCorrespondentRepo()).Run(ctx, rows)
		require.Nil(t, result)
		require.ErrorIs(t, err, errStorage)
	})
}
