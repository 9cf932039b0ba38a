package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
	"github.com/assistravel/casetrack/pkg/eventbus"
)

type CorrespondentService struct {
	repo      correspondent.Repository
	publisher eventbus.EventBus
}

func NewCorrespondentService(repo correspondent.Repository, publisher eventbus.EventBus) *CorrespondentService {
	return &CorrespondentService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *CorrespondentService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *CorrespondentService) GetAll(ctx context.Context) ([]*correspondent.Correspondent, error) {
	return s.repo.GetAll(ctx)
}

func (s *CorrespondentService) GetPaginated(
	ctx context.Context, params *correspondent.FindParams,
) ([]*correspondent.Correspondent, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *CorrespondentService) GetByID(ctx context.Context, id uuid.UUID) (*correspondent.Correspondent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CorrespondentService) GetByName(ctx context.Context, name string) (*correspondent.Correspondent, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *CorrespondentService) Create(ctx context.Context, data *correspondent.Correspondent) (*correspondent.Correspondent, error) {
	created, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish("correspondent.created", created)
	return created, nil
}

func (s *CorrespondentService) Update(ctx context.Context, data *correspondent.Correspondent) (*correspondent.Correspondent, error) {
	updated, err := s.repo.Update(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish("correspondent.updated", updated)
	return updated, nil
}

func (s *CorrespondentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish("correspondent.deleted", id)
	return nil
}
