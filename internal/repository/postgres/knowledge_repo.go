package postgres

import (
	"context"

	"github.com/coachkit/draft-coach/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type knowledgeRepository struct {
	db *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) *knowledgeRepository {
	return &knowledgeRepository{db: db}
}

func (r *knowledgeRepository) UpsertMetaRatings(ctx context.Context, ratings []domain.MetaRating) error {
	if len(ratings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_id"}},
		UpdateAll: true,
	}).Create(&ratings).Error
}

func (r *knowledgeRepository) UpsertMatchups(ctx context.Context, matchups []domain.Matchup) error {
	if len(matchups) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_id"}, {Name: "target_id"}, {Name: "kind"}},
		DoNothing: true,
	}).Create(&matchups).Error
}

func (r *knowledgeRepository) GetMetaRatings(ctx context.Context) ([]domain.MetaRating, error) {
	var ratings []domain.MetaRating
	err := r.db.WithContext(ctx).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *knowledgeRepository) GetMatchups(ctx context.Context) ([]domain.Matchup, error) {
	var matchups []domain.Matchup
	err := r.db.WithContext(ctx).Find(&matchups).Error
	if err != nil {
		return nil, err
	}
	return matchups, nil
}
