package domain

// DraftPlayer is one of a team's five players, index-aligned to the pick slot
// (and therefore role) they will fill.
type DraftPlayer struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Role         Role        `json:"role"`
	ChampionPool []PoolEntry `json:"championPool"`
}

// PoolEntry is a player's recorded history on one champion. Relevance in
// recommendations is computed from games and win rate, not list position.
type PoolEntry struct {
	ChampionID  string  `json:"championId"`
	GamesPlayed int     `json:"gamesPlayed"`
	WinRate     float64 `json:"winRate"` // 0-100
}

// PoolEntryFor returns the player's history on a champion, if any.
func (p *DraftPlayer) PoolEntryFor(championID string) (PoolEntry, bool) {
	for _, e := range p.ChampionPool {
		if e.ChampionID == championID {
			return e, true
		}
	}
	return PoolEntry{}, false
}
