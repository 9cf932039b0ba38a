package importer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
)

// CorrespondentResolver matches correspondent names case-insensitively
// against known correspondents and lazily creates the ones it has not seen.
// Created ids are cached for the remainder of the run, so repeated rows
// referencing the same new name reuse one correspondent.
//
// Two concurrent runs racing on the same new name can still each create a
// correspondent; the resolver does not coordinate across runs.
type CorrespondentResolver struct {
	repo  correspondent.Repository
	cache map[string]uuid.UUID
}

func NewCorrespondentResolver(
	repo correspondent.Repository,
	known []*correspondent.Correspondent,
) *CorrespondentResolver {
	cache := make(map[string]uuid.UUID, len(known))
	for _, c := range known {
		cache[strings.ToLower(c.Name())] = c.ID()
	}
	return &CorrespondentResolver{repo: repo, cache: cache}
}

// Resolve returns the correspondent id for a name, creating the
// correspondent with the given country when the name is unknown. The second
// return value reports whether a create happened.
func (r *CorrespondentResolver) Resolve(ctx context.Context, name, country string) (uuid.UUID, bool, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := r.cache[key]; ok {
		return id, false, nil
	}

	created, err := r.repo.Create(ctx, correspondent.New(name, country))
	if err != nil {
		return uuid.Nil, false, err
	}
	r.cache[key] = created.ID()
	return created.ID(), true, nil
}
