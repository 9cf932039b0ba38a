package correspondent

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
	GetAll(ctx context.Context) ([]*Correspondent, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Correspondent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Correspondent, error)
	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (*Correspondent, error)
	Create(ctx context.Context, c *Correspondent) (*Correspondent, error)
	Update(ctx context.Context, c *Correspondent) (*Correspondent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
