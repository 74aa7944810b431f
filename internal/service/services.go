package service

import (
	"context"

	"github.com/coachkit/draft-coach/internal/config"
	"github.com/coachkit/draft-coach/internal/narrative"
	"github.com/coachkit/draft-coach/internal/repository"
)

type Services struct {
	Champion *ChampionService
	Draft    *DraftService
}

// NewServices loads the reference tables once and wires the draft service on
// top of them. Reference data is resolved before any draft runs; the core
// never fetches over the network mid-computation.
func NewServices(ctx context.Context, repos *repository.Repositories, narrator narrative.Generator, cfg *config.Config) (*Services, error) {
	championService := NewChampionService(repos.Champion, repos.Knowledge)

	draftService, err := NewDraftService(ctx, repos, narrator, cfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		Champion: championService,
		Draft:    draftService,
	}, nil
}
