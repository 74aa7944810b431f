package service

import (
	"context"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/repository"
)

type ChampionService struct {
	championRepo  repository.ChampionRepository
	knowledgeRepo repository.KnowledgeRepository
}

func NewChampionService(championRepo repository.ChampionRepository, knowledgeRepo repository.KnowledgeRepository) *ChampionService {
	return &ChampionService{championRepo: championRepo, knowledgeRepo: knowledgeRepo}
}

func (s *ChampionService) GetAllChampions(ctx context.Context) ([]*domain.Champion, error) {
	return s.championRepo.GetAll(ctx)
}

func (s *ChampionService) GetChampion(ctx context.Context, id string) (*domain.Champion, error) {
	return s.championRepo.GetByID(ctx, id)
}

func (s *ChampionService) GetChampionByKey(ctx context.Context, key string) (*domain.Champion, error) {
	return s.championRepo.GetByKey(ctx, key)
}

// SyncReference replaces the stored reference tables with a fresh drop from
// the surrounding data pipeline.
func (s *ChampionService) SyncReference(ctx context.Context, champions []*domain.Champion, ratings []domain.MetaRating, matchups []domain.Matchup) error {
	if len(champions) > 0 {
		if err := s.championRepo.UpsertMany(ctx, champions); err != nil {
			return err
		}
	}
	if err := s.knowledgeRepo.UpsertMetaRatings(ctx, ratings); err != nil {
		return err
	}
	return s.knowledgeRepo.UpsertMatchups(ctx, matchups)
}
