package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachkit/draft-coach/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

func (r *championRepository) Upsert(ctx context.Context, champion *domain.Champion) error {
	return r.UpsertMany(ctx, []*domain.Champion{champion})
}

func (r *championRepository) UpsertMany(ctx context.Context, champions []*domain.Champion) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(champions).Error
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).First(&champion, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownChampion, id)
	}
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

// GetByKey looks a champion up by its numeric data-dragon key, the identifier
// match feeds and stats drops carry instead of the string id.
func (r *championRepository) GetByKey(ctx context.Context, key string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).First(&champion, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: key %s", domain.ErrUnknownChampion, key)
	}
	if err != nil {
		return nil, err
	}
	return &champion, nil
}
