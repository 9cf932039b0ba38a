package caserecord

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	Query  string
	Limit  int
	Offset int
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Case, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Case, error)
	GetByCaseNumber(ctx context.Context, caseNumber string) (*Case, error)
	ExistsByCaseNumber(ctx context.Context, caseNumber string) (bool, error)
	Create(ctx context.Context, c *Case) (*Case, error)
	Update(ctx context.Context, c *Case) (*Case, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
