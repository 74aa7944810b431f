package refdata

import "github.com/coachkit/draft-coach/internal/domain"

const seedPatch = "14.1"

// MetaRatings returns the seed tier list for the current patch.
func MetaRatings() []domain.MetaRating {
	tiers := map[domain.MetaTier][]string{
		domain.TierS: {"KaiSa", "Viego", "Orianna", "Nautilus", "Aatrox"},
		domain.TierA: {"Jax", "Sejuani", "Ahri", "Jinx", "Thresh", "Rakan", "Camille", "JarvanIV"},
		domain.TierB: {"Malphite", "LeeSin", "Syndra", "Caitlyn", "Ezreal", "Leona", "Ornn", "Xayah", "Maokai", "Gnar"},
		domain.TierC: {"Fiora", "Renekton", "KhaZix", "Zed", "Viktor", "Azir", "Galio", "Varus", "Aphelios", "Lulu", "Janna", "Braum"},
	}

	var ratings []domain.MetaRating
	for _, tier := range []domain.MetaTier{domain.TierS, domain.TierA, domain.TierB, domain.TierC} {
		for _, id := range tiers[tier] {
			ratings = append(ratings, domain.MetaRating{ChampionID: id, Tier: tier, Patch: seedPatch})
		}
	}
	return ratings
}

// Matchups returns the seed counter/synergy table. Counter rows read
// "champion beats target"; synergy rows are unordered pairs.
func Matchups() []domain.Matchup {
	counters := [][2]string{
		{"Malphite", "Zed"},
		{"Malphite", "Jax"},
		{"Malphite", "Camille"},
		{"Malphite", "Aatrox"},
		{"Fiora", "Malphite"},
		{"Fiora", "Ornn"},
		{"Renekton", "Jax"},
		{"Renekton", "Camille"},
		{"Zed", "Viktor"},
		{"Zed", "Syndra"},
		{"Galio", "Ahri"},
		{"Galio", "Syndra"},
		{"Syndra", "Azir"},
		{"Syndra", "Galio"},
		{"Caitlyn", "Jinx"},
		{"Caitlyn", "Aphelios"},
		{"JarvanIV", "KhaZix"},
		{"LeeSin", "Sejuani"},
		{"Viego", "Maokai"},
		{"Nautilus", "Xayah"},
		{"Leona", "Lulu"},
	}
	synergies := [][2]string{
		{"Xayah", "Rakan"},
		{"JarvanIV", "Orianna"},
		{"Malphite", "Orianna"},
		{"Jinx", "Lulu"},
		{"Jinx", "Thresh"},
		{"KaiSa", "Nautilus"},
		{"KaiSa", "Leona"},
		{"Caitlyn", "Lulu"},
		{"Ezreal", "Janna"},
		{"Aphelios", "Braum"},
		{"Sejuani", "Aatrox"},
		{"Azir", "Lulu"},
	}

	rows := make([]domain.Matchup, 0, len(counters)+len(synergies))
	for _, c := range counters {
		rows = append(rows, domain.Matchup{ChampionID: c[0], TargetID: c[1], Kind: domain.MatchupCounter})
	}
	for _, s := range synergies {
		rows = append(rows, domain.Matchup{ChampionID: s[0], TargetID: s[1], Kind: domain.MatchupSynergy})
	}
	return rows
}
