package postgres

import (
	"context"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/refdata"
	"github.com/coachkit/draft-coach/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Champion{},
		&domain.MetaRating{},
		&domain.Matchup{},
		&PlayerPool{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Champion:   NewChampionRepository(db),
		Knowledge:  NewKnowledgeRepository(db),
		PlayerPool: NewPlayerPoolRepository(db),
	}
}

// SeedIfEmpty loads the built-in reference data the first time the service
// runs against a fresh database. Synced data from a stats provider
// overwrites it later via the upsert paths.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Champion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repos := NewRepositories(db)
	champions := refdata.Champions()
	ptrs := make([]*domain.Champion, len(champions))
	for i := range champions {
		ptrs[i] = &champions[i]
	}
	if err := repos.Champion.UpsertMany(ctx, ptrs); err != nil {
		return err
	}
	if err := repos.Knowledge.UpsertMetaRatings(ctx, refdata.MetaRatings()); err != nil {
		return err
	}
	if err := repos.Knowledge.UpsertMatchups(ctx, refdata.Matchups()); err != nil {
		return err
	}
	for playerID, entries := range refdata.PlayerPools() {
		if err := repos.PlayerPool.Upsert(ctx, playerID, entries); err != nil {
			return err
		}
	}
	return nil
}
