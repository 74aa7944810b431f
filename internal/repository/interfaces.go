package repository

import (
	"context"

	"github.com/coachkit/draft-coach/internal/domain"
)

// ChampionRepository serves the read-only champion catalog.
type ChampionRepository interface {
	Upsert(ctx context.Context, champion *domain.Champion) error
	UpsertMany(ctx context.Context, champions []*domain.Champion) error
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id string) (*domain.Champion, error)
	GetByKey(ctx context.Context, key string) (*domain.Champion, error)
}

// KnowledgeRepository serves the static counter/synergy/meta tables.
type KnowledgeRepository interface {
	UpsertMetaRatings(ctx context.Context, ratings []domain.MetaRating) error
	UpsertMatchups(ctx context.Context, matchups []domain.Matchup) error
	GetMetaRatings(ctx context.Context) ([]domain.MetaRating, error)
	GetMatchups(ctx context.Context) ([]domain.Matchup, error)
}

// PlayerPoolRepository serves per-player champion history. The entries are
// already-aggregated stats supplied by the surrounding data pipeline; the
// core never fetches from the stats provider itself.
type PlayerPoolRepository interface {
	Upsert(ctx context.Context, playerID string, entries []domain.PoolEntry) error
	GetByPlayerID(ctx context.Context, playerID string) ([]domain.PoolEntry, error)
}

type Repositories struct {
	Champion   ChampionRepository
	Knowledge  KnowledgeRepository
	PlayerPool PlayerPoolRepository
}
