package domain

// RecommendationCategory labels a recommendation by its dominant factor.
type RecommendationCategory string

const (
	CategoryComfort RecommendationCategory = "COMFORT"
	CategoryCounter RecommendationCategory = "COUNTER"
	CategoryMeta    RecommendationCategory = "META"
	CategorySynergy RecommendationCategory = "SYNERGY"
	CategoryDeny    RecommendationCategory = "DENY"
	CategoryFlex    RecommendationCategory = "FLEX"
)

func (c RecommendationCategory) IsValid() bool {
	switch c {
	case CategoryComfort, CategoryCounter, CategoryMeta, CategorySynergy, CategoryDeny, CategoryFlex:
		return true
	}
	return false
}

// Recommendation is one ranked candidate for the step on the clock.
// Recomputed on every state change, never persisted.
type Recommendation struct {
	ChampionID   string                 `json:"championId"`
	ChampionName string                 `json:"championName"`
	Score        int                    `json:"score"` // 0-100
	Category     RecommendationCategory `json:"category"`
	Reasons      []string               `json:"reasons"` // most important first
	FlexLanes    []Role                 `json:"flexLanes"`
	TeamNeeds    []string               `json:"teamNeeds"`
}

// MetaTier is an external tier signal for the current patch.
type MetaTier string

const (
	TierS MetaTier = "S"
	TierA MetaTier = "A"
	TierB MetaTier = "B"
	TierC MetaTier = "C"
)

// MetaRating is the stored per-champion tier row.
type MetaRating struct {
	ChampionID string   `json:"championId" gorm:"primaryKey"`
	Tier       MetaTier `json:"tier" gorm:"not null"`
	Patch      string   `json:"patch"`
}

// MatchupKind distinguishes counter and synergy knowledge rows.
type MatchupKind string

const (
	MatchupCounter MatchupKind = "counter"
	MatchupSynergy MatchupKind = "synergy"
)

// Matchup is one row of the static counter/synergy knowledge table. For
// counters the champion has a favorable matchup against the target; for
// synergies the pair works well together.
type Matchup struct {
	ChampionID string      `json:"championId" gorm:"primaryKey"`
	TargetID   string      `json:"targetId" gorm:"primaryKey"`
	Kind       MatchupKind `json:"kind" gorm:"primaryKey"`
}
