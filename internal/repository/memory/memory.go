// Package memory holds map-backed repository implementations used in tests
// and when the service runs without a database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/refdata"
	"github.com/coachkit/draft-coach/internal/repository"
)

// NewRepositories returns empty in-memory repositories.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Champion:   NewChampionRepository(),
		Knowledge:  NewKnowledgeRepository(),
		PlayerPool: NewPlayerPoolRepository(),
	}
}

// NewSeededRepositories returns in-memory repositories preloaded with the
// built-in reference data.
func NewSeededRepositories() *repository.Repositories {
	repos := NewRepositories()
	ctx := context.Background()

	champions := refdata.Champions()
	ptrs := make([]*domain.Champion, len(champions))
	for i := range champions {
		ptrs[i] = &champions[i]
	}
	repos.Champion.UpsertMany(ctx, ptrs)
	repos.Knowledge.UpsertMetaRatings(ctx, refdata.MetaRatings())
	repos.Knowledge.UpsertMatchups(ctx, refdata.Matchups())
	for playerID, entries := range refdata.PlayerPools() {
		repos.PlayerPool.Upsert(ctx, playerID, entries)
	}
	return repos
}

type championRepository struct {
	mu        sync.RWMutex
	champions map[string]domain.Champion
}

func NewChampionRepository() *championRepository {
	return &championRepository{champions: make(map[string]domain.Champion)}
}

func (r *championRepository) Upsert(_ context.Context, champion *domain.Champion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.champions[champion.ID] = *champion
	return nil
}

func (r *championRepository) UpsertMany(ctx context.Context, champions []*domain.Champion) error {
	for _, c := range champions {
		if err := r.Upsert(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *championRepository) GetAll(_ context.Context) ([]*domain.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*domain.Champion, 0, len(r.champions))
	for id := range r.champions {
		c := r.champions[id]
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *championRepository) GetByID(_ context.Context, id string) (*domain.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.champions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownChampion, id)
	}
	return &c, nil
}

func (r *championRepository) GetByKey(_ context.Context, key string) (*domain.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id := range r.champions {
		if r.champions[id].Key == key {
			c := r.champions[id]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: key %s", domain.ErrUnknownChampion, key)
}

type knowledgeRepository struct {
	mu       sync.RWMutex
	ratings  map[string]domain.MetaRating
	matchups map[domain.Matchup]struct{}
}

func NewKnowledgeRepository() *knowledgeRepository {
	return &knowledgeRepository{
		ratings:  make(map[string]domain.MetaRating),
		matchups: make(map[domain.Matchup]struct{}),
	}
}

func (r *knowledgeRepository) UpsertMetaRatings(_ context.Context, ratings []domain.MetaRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rating := range ratings {
		r.ratings[rating.ChampionID] = rating
	}
	return nil
}

func (r *knowledgeRepository) UpsertMatchups(_ context.Context, matchups []domain.Matchup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range matchups {
		r.matchups[m] = struct{}{}
	}
	return nil
}

func (r *knowledgeRepository) GetMetaRatings(_ context.Context) ([]domain.MetaRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ratings := make([]domain.MetaRating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		ratings = append(ratings, rating)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ChampionID < ratings[j].ChampionID })
	return ratings, nil
}

func (r *knowledgeRepository) GetMatchups(_ context.Context) ([]domain.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matchups := make([]domain.Matchup, 0, len(r.matchups))
	for m := range r.matchups {
		matchups = append(matchups, m)
	}
	sort.Slice(matchups, func(i, j int) bool {
		if matchups[i].ChampionID != matchups[j].ChampionID {
			return matchups[i].ChampionID < matchups[j].ChampionID
		}
		if matchups[i].TargetID != matchups[j].TargetID {
			return matchups[i].TargetID < matchups[j].TargetID
		}
		return matchups[i].Kind < matchups[j].Kind
	})
	return matchups, nil
}

type playerPoolRepository struct {
	mu    sync.RWMutex
	pools map[string][]domain.PoolEntry
}

func NewPlayerPoolRepository() *playerPoolRepository {
	return &playerPoolRepository{pools: make(map[string][]domain.PoolEntry)}
}

func (r *playerPoolRepository) Upsert(_ context.Context, playerID string, entries []domain.PoolEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make([]domain.PoolEntry, len(entries))
	copy(copied, entries)
	r.pools[playerID] = copied
	return nil
}

func (r *playerPoolRepository) GetByPlayerID(_ context.Context, playerID string) ([]domain.PoolEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries, ok := r.pools[playerID]
	if !ok {
		return nil, nil
	}
	copied := make([]domain.PoolEntry, len(entries))
	copy(copied, entries)
	return copied, nil
}
