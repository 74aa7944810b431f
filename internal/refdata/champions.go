// Package refdata ships a built-in slice of reference data so the tool runs
// with no database behind it. The values are content, not algorithm: a
// deployment syncs the real tables from its stats provider and these seeds
// only cover enough of the roster for drafting sessions and tests.
package refdata

import "github.com/coachkit/draft-coach/internal/domain"

func champ(id, key, name, title string, roles []domain.Role, dmg domain.DamageType, tags []domain.ChampionTag, spikes []domain.GamePhase) domain.Champion {
	return domain.Champion{
		ID:          id,
		Key:         key,
		Name:        name,
		Title:       title,
		Roles:       roles,
		DamageType:  dmg,
		Tags:        tags,
		SpikePhases: spikes,
	}
}

// Champions returns the seed catalog.
func Champions() []domain.Champion {
	top := []domain.Role{domain.RoleTop}
	jungle := []domain.Role{domain.RoleJungle}
	mid := []domain.Role{domain.RoleMid}
	adc := []domain.Role{domain.RoleADC}
	support := []domain.Role{domain.RoleSupport}

	return []domain.Champion{
		// Top
		champ("Aatrox", "266", "Aatrox", "the Darkin Blade", top, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagFrontline, domain.TagEngage}, []domain.GamePhase{domain.PhaseEarly, domain.PhaseMid}),
		champ("Malphite", "54", "Malphite", "Shard of the Monolith", []domain.Role{domain.RoleTop, domain.RoleSupport}, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagFrontline, domain.TagEngage}, []domain.GamePhase{domain.PhaseMid, domain.PhaseLate}),
		champ("Jax", "24", "Jax", "Grandmaster at Arms", []domain.Role{domain.RoleTop, domain.RoleJungle}, domain.DamageMixed,
			[]domain.ChampionTag{domain.TagSplitpush}, []domain.GamePhase{domain.PhaseLate}),
		champ("Fiora", "114", "Fiora", "the Grand Duelist", top, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagSplitpush}, []domain.GamePhase{domain.PhaseLate}),
		champ("Camille", "164", "Camille", "the Steel Shadow", top, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagSplitpush, domain.TagPickThreat}, []domain.GamePhase{domain.PhaseMid, domain.PhaseLate}),
		champ("Ornn", "516", "Ornn", "the Fire below the Mountain", top, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagFrontline, domain.TagEngage}, []domain.GamePhase{domain.PhaseLate}),
		champ("Renekton", "58", "Renekton", "the Butcher of the Sands", []domain.Role{domain.RoleTop, domain.RoleMid}, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagFrontline}, []domain.GamePhase{domain.PhaseEarly}),
		champ("Gnar", "150", "Gnar", "the Missing Link", top, domain.DamageMixed,
			[]domain.ChampionTag{domain.TagEngage, domain.TagPoke}, []domain.GamePhase{domain.PhaseMid}),

		// Jungle
		champ("LeeSin", "64", "Lee Sin", "the Blind Monk", jungle, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagEngage, domain.TagPickThreat}, []domain.GamePhase{domain.PhaseEarly}),
		champ("Sejuani", "113", "Sejuani", "Fury of the North", jungle, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagFrontline, domain.TagEngage}, []domain.GamePhase{domain.PhaseMid}),
		champ("Viego", "234", "Viego", "the Ruined King", jungle, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagPickThreat}, []domain.GamePhase{domain.PhaseMid, domain.PhaseLate}),
		champ("JarvanIV", "59", "Jarvan IV", "the Exemplar of Demacia", jungle, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagEngage, domain.TagFrontline}, []domain.GamePhase{domain.PhaseEarly, domain.PhaseMid}),
		champ("KhaZix", "121", "Kha'Zix", "the Voidreaver", jungle, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagPickThreat}, []domain.GamePhase{domain.PhaseEarly, domain.PhaseMid}),
		champ("Maokai", "57", "Maokai", "the Twisted Treant", []domain.Role{domain.RoleJungle, domain.RoleSupport}, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagFrontline, domain.TagEngage}, []domain.GamePhase{domain.PhaseLate}),

		// Mid
		champ("Ahri", "103", "Ahri", "the Nine-Tailed Fox", mid, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagPickThreat}, []domain.GamePhase{domain.PhaseMid}),
		champ("Orianna", "61", "Orianna", "the Lady of Clockwork", mid, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagPoke, domain.TagDisengage}, []domain.GamePhase{domain.PhaseMid, domain.PhaseLate}),
		champ("Syndra", "134", "Syndra", "the Dark Sovereign", mid, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagPoke, domain.TagPickThreat}, []domain.GamePhase{domain.PhaseMid}),
		champ("Zed", "238", "Zed", "the Master of Shadows", mid, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagPickThreat, domain.TagSplitpush}, []domain.GamePhase{domain.PhaseMid}),
		champ("Viktor", "112", "Viktor", "the Herald of the Arcane", mid, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagPoke}, []domain.GamePhase{domain.PhaseLate}),
		champ("Azir", "268", "Azir", "the Emperor of the Sands", mid, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagDisengage, domain.TagPoke}, []domain.GamePhase{domain.PhaseLate}),
		champ("Galio", "3", "Galio", "the Colossus", []domain.Role{domain.RoleMid, domain.RoleSupport}, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagFrontline, domain.TagEngage}, []domain.GamePhase{domain.PhaseMid}),

		// ADC
		champ("Jinx", "222", "Jinx", "the Loose Cannon", adc, domain.DamagePhysical,
			nil, []domain.GamePhase{domain.PhaseLate}),
		champ("Caitlyn", "51", "Caitlyn", "the Sheriff of Piltover", adc, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagPoke}, []domain.GamePhase{domain.PhaseEarly, domain.PhaseLate}),
		champ("Ezreal", "81", "Ezreal", "the Prodigal Explorer", adc, domain.DamageMixed,
			[]domain.ChampionTag{domain.TagPoke}, []domain.GamePhase{domain.PhaseMid}),
		champ("Varus", "110", "Varus", "the Arrow of Retribution", []domain.Role{domain.RoleADC, domain.RoleMid}, domain.DamageMixed,
			[]domain.ChampionTag{domain.TagPoke, domain.TagPickThreat}, []domain.GamePhase{domain.PhaseMid}),
		champ("KaiSa", "145", "Kai'Sa", "Daughter of the Void", adc, domain.DamageMixed,
			nil, []domain.GamePhase{domain.PhaseMid, domain.PhaseLate}),
		champ("Aphelios", "523", "Aphelios", "the Weapon of the Faithful", adc, domain.DamagePhysical,
			nil, []domain.GamePhase{domain.PhaseLate}),
		champ("Xayah", "498", "Xayah", "the Rebel", adc, domain.DamagePhysical,
			[]domain.ChampionTag{domain.TagDisengage}, []domain.GamePhase{domain.PhaseMid, domain.PhaseLate}),

		// Support
		champ("Thresh", "412", "Thresh", "the Chain Warden", support, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagEngage, domain.TagPickThreat}, []domain.GamePhase{domain.PhaseEarly, domain.PhaseMid}),
		champ("Leona", "89", "Leona", "the Radiant Dawn", support, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagEngage, domain.TagFrontline}, []domain.GamePhase{domain.PhaseEarly}),
		champ("Lulu", "117", "Lulu", "the Fae Sorceress", support, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagDisengage}, []domain.GamePhase{domain.PhaseLate}),
		champ("Nautilus", "111", "Nautilus", "the Titan of the Depths", []domain.Role{domain.RoleSupport, domain.RoleJungle}, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagEngage, domain.TagFrontline, domain.TagPickThreat}, []domain.GamePhase{domain.PhaseEarly}),
		champ("Janna", "40", "Janna", "the Storm's Fury", support, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagDisengage}, []domain.GamePhase{domain.PhaseMid}),
		champ("Braum", "201", "Braum", "the Heart of the Freljord", support, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagFrontline, domain.TagDisengage}, []domain.GamePhase{domain.PhaseEarly}),
		champ("Rakan", "497", "Rakan", "the Charmer", support, domain.DamageMagic,
			[]domain.ChampionTag{domain.TagEngage, domain.TagDisengage}, []domain.GamePhase{domain.PhaseMid}),
	}
}
