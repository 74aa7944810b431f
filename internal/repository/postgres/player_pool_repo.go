package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coachkit/draft-coach/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerPool is the storage row for a player's aggregated champion history.
// Entries are kept as a jsonb blob; the pool is always read and written
// whole.
type PlayerPool struct {
	PlayerID  string         `gorm:"primaryKey"`
	Entries   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	UpdatedAt time.Time
}

type playerPoolRepository struct {
	db *gorm.DB
}

func NewPlayerPoolRepository(db *gorm.DB) *playerPoolRepository {
	return &playerPoolRepository{db: db}
}

func (r *playerPoolRepository) Upsert(ctx context.Context, playerID string, entries []domain.PoolEntry) error {
	blob, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	row := PlayerPool{PlayerID: playerID, Entries: blob, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		UpdateAll: true,
	}).Create(&row).Error
}

func (r *playerPoolRepository) GetByPlayerID(ctx context.Context, playerID string) ([]domain.PoolEntry, error) {
	var row PlayerPool
	err := r.db.WithContext(ctx).First(&row, "player_id = ?", playerID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.PoolEntry
	if err := json.Unmarshal(row.Entries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
