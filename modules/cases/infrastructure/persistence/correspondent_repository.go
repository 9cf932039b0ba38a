package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence/models"
	"github.com/assistravel/casetrack/pkg/composables"
	"github.com/assistravel/casetrack/pkg/mapping"
)

var (
	ErrCorrespondentNotFound = fmt.Errorf("correspondent not found")
)

const (
	correspondentFindQuery = `SELECT id, name, country, phone, email, created_at, updated_at FROM correspondents`
)

type CorrespondentRepository struct{}

func NewCorrespondentRepository() correspondent.Repository {
	return &CorrespondentRepository{}
}

func (r *CorrespondentRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM correspondents`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count correspondents")
	}
	return count, nil
}

func (r *CorrespondentRepository) GetAll(ctx context.Context) ([]*correspondent.Correspondent, error) {
	return r.queryCorrespondents(ctx, correspondentFindQuery+" ORDER BY name")
}

func (r *CorrespondentRepository) GetPaginated(
	ctx context.Context, params *correspondent.FindParams,
) ([]*correspondent.Correspondent, error) {
	query := correspondentFindQuery
	args := []any{}
	if params.Query != "" {
		query += " WHERE name ILIKE $1 OR country ILIKE $1"
		args = append(args, "%"+params.Query+"%")
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)
	return r.queryCorrespondents(ctx, query, args...)
}

func (r *CorrespondentRepository) GetByID(ctx context.Context, id uuid.UUID) (*correspondent.Correspondent, error) {
	rows, err := r.queryCorrespondents(ctx, correspondentFindQuery+" WHERE id = $1", id.String())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrCorrespondentNotFound
	}
	return rows[0], nil
}

func (r *CorrespondentRepository) GetByName(ctx context.Context, name string) (*correspondent.Correspondent, error) {
	rows, err := r.queryCorrespondents(ctx, correspondentFindQuery+" WHERE lower(name) = lower($1)", name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrCorrespondentNotFound
	}
	return rows[0], nil
}

func (r *CorrespondentRepository) Create(ctx context.Context, c *correspondent.Correspondent) (*correspondent.Correspondent, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO correspondents (id, name, country, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	now := time.Now()
	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		c.ID().String(),
		c.Name(),
		c.Country(),
		mapping.PointerToSQLNullString(c.Phone()),
		mapping.PointerToSQLNullString(c.Email()),
		now,
		now,
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert correspondent")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *CorrespondentRepository) Update(ctx context.Context, c *correspondent.Correspondent) (*correspondent.Correspondent, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE correspondents
		SET name = $1, country = $2, phone = $3, email = $4, updated_at = $5
		WHERE id = $6
		RETURNING id
	`
	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		c.Name(),
		c.Country(),
		mapping.PointerToSQLNullString(c.Phone()),
		mapping.PointerToSQLNullString(c.Email()),
		time.Now(),
		c.ID().String(),
	).Scan(&idStr); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCorrespondentNotFound
		}
		return nil, errors.Wrap(err, "failed to update correspondent")
	}
	return r.GetByID(ctx, c.ID())
}

func (r *CorrespondentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM correspondents WHERE id = $1`, id.String())
	return err
}

func (r *CorrespondentRepository) queryCorrespondents(
	ctx context.Context, query string, args ...any,
) ([]*correspondent.Correspondent, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var result []*correspondent.Correspondent
	for rows.Next() {
		var m models.Correspondent
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Country,
			&m.Phone,
			&m.Email,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan correspondent row")
		}
		entity, err := toDomainCorrespondent(&m)
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
