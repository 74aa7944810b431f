// Package engine turns draft state plus player champion pools into ranked,
// explained recommendations. The engine itself is a stateless pure function
// of its inputs: reference data is loaded up front and never refetched, and
// no scores are cached between calls.
package engine

import "github.com/coachkit/draft-coach/internal/domain"

// Knowledge is the static counter/synergy/meta reference table the scorer
// consults. The values are content supplied by external collaborators; an
// empty table degrades the matching factors to zero instead of failing.
type Knowledge struct {
	tiers     map[string]domain.MetaTier
	counters  map[string]map[string]bool // champion -> targets it beats
	synergies map[string]map[string]bool // symmetric pairs
}

// NewKnowledge builds the lookup tables from stored rows. Synergy rows are
// indexed in both directions so pair order never matters.
func NewKnowledge(tiers []domain.MetaRating, matchups []domain.Matchup) Knowledge {
	k := Knowledge{
		tiers:     make(map[string]domain.MetaTier, len(tiers)),
		counters:  make(map[string]map[string]bool),
		synergies: make(map[string]map[string]bool),
	}
	for _, t := range tiers {
		k.tiers[t.ChampionID] = t.Tier
	}
	for _, m := range matchups {
		switch m.Kind {
		case domain.MatchupCounter:
			addEdge(k.counters, m.ChampionID, m.TargetID)
		case domain.MatchupSynergy:
			addEdge(k.synergies, m.ChampionID, m.TargetID)
			addEdge(k.synergies, m.TargetID, m.ChampionID)
		}
	}
	return k
}

func addEdge(table map[string]map[string]bool, from, to string) {
	if table[from] == nil {
		table[from] = make(map[string]bool)
	}
	table[from][to] = true
}

// TierOf returns the champion's meta tier for the current patch.
func (k Knowledge) TierOf(championID string) (domain.MetaTier, bool) {
	t, ok := k.tiers[championID]
	return t, ok
}

// Counters reports whether champion has a known favorable matchup against
// target.
func (k Knowledge) Counters(championID, targetID string) bool {
	return k.counters[championID][targetID]
}

// SynergizesWith reports whether the two champions are a known strong pair.
func (k Knowledge) SynergizesWith(a, b string) bool {
	return k.synergies[a][b]
}

// HasMatchupData reports whether any counter/synergy rows were loaded.
// An empty table is a degraded-data condition, not an error.
func (k Knowledge) HasMatchupData() bool {
	return len(k.counters) > 0 || len(k.synergies) > 0
}

// HasMetaData reports whether any tier rows were loaded.
func (k Knowledge) HasMetaData() bool {
	return len(k.tiers) > 0
}
