package refdata

import "github.com/coachkit/draft-coach/internal/domain"

// PlayerPools returns seed champion pools keyed by player id, enough to demo
// comfort and denial scoring without a stats backend.
func PlayerPools() map[string][]domain.PoolEntry {
	return map[string][]domain.PoolEntry{
		"demo-top-blue": {
			{ChampionID: "Aatrox", GamesPlayed: 18, WinRate: 61.1},
			{ChampionID: "Jax", GamesPlayed: 12, WinRate: 58.3},
			{ChampionID: "Renekton", GamesPlayed: 7, WinRate: 42.9},
		},
		"demo-jungle-blue": {
			{ChampionID: "Viego", GamesPlayed: 21, WinRate: 57.1},
			{ChampionID: "LeeSin", GamesPlayed: 15, WinRate: 53.3},
			{ChampionID: "Sejuani", GamesPlayed: 9, WinRate: 66.7},
		},
		"demo-mid-blue": {
			{ChampionID: "Orianna", GamesPlayed: 24, WinRate: 62.5},
			{ChampionID: "Azir", GamesPlayed: 14, WinRate: 50.0},
			{ChampionID: "Ahri", GamesPlayed: 10, WinRate: 60.0},
		},
		"demo-adc-blue": {
			{ChampionID: "Jinx", GamesPlayed: 11, WinRate: 72.7},
			{ChampionID: "KaiSa", GamesPlayed: 19, WinRate: 52.6},
			{ChampionID: "Ezreal", GamesPlayed: 8, WinRate: 50.0},
		},
		"demo-support-blue": {
			{ChampionID: "Thresh", GamesPlayed: 22, WinRate: 59.1},
			{ChampionID: "Rakan", GamesPlayed: 13, WinRate: 61.5},
			{ChampionID: "Lulu", GamesPlayed: 6, WinRate: 33.3},
		},
		"demo-top-red": {
			{ChampionID: "Malphite", GamesPlayed: 16, WinRate: 56.3},
			{ChampionID: "Ornn", GamesPlayed: 11, WinRate: 63.6},
			{ChampionID: "Fiora", GamesPlayed: 13, WinRate: 53.8},
		},
		"demo-jungle-red": {
			{ChampionID: "JarvanIV", GamesPlayed: 17, WinRate: 58.8},
			{ChampionID: "Maokai", GamesPlayed: 12, WinRate: 50.0},
			{ChampionID: "KhaZix", GamesPlayed: 14, WinRate: 57.1},
		},
		"demo-mid-red": {
			{ChampionID: "Syndra", GamesPlayed: 20, WinRate: 55.0},
			{ChampionID: "Viktor", GamesPlayed: 15, WinRate: 60.0},
			{ChampionID: "Galio", GamesPlayed: 8, WinRate: 62.5},
		},
		"demo-adc-red": {
			{ChampionID: "Caitlyn", GamesPlayed: 18, WinRate: 55.6},
			{ChampionID: "Xayah", GamesPlayed: 16, WinRate: 62.5},
			{ChampionID: "Aphelios", GamesPlayed: 10, WinRate: 40.0},
		},
		"demo-support-red": {
			{ChampionID: "Nautilus", GamesPlayed: 19, WinRate: 57.9},
			{ChampionID: "Leona", GamesPlayed: 14, WinRate: 64.3},
			{ChampionID: "Braum", GamesPlayed: 9, WinRate: 44.4},
		},
	}
}
