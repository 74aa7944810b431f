package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/draft"
)

// Scoring weights. Each factor contributes an additive bonus; the sum is
// clamped to [0,100]. A max comfort + meta + counter pick lands in the
// 60-80 band so only stacked signals approach 100.
const (
	comfortWeight     = 30.0
	metaWeight        = 20.0
	counterPerMatchup = 8.0
	counterCap        = 16.0
	synergyPerPair    = 8.0
	synergyCap        = 16.0
	denyWeight        = 35.0
	needBonus         = 10.0
	flexBonus         = 5.0

	// comfortGamesCeiling is the games-played count at which the sample is
	// treated as fully trustworthy.
	comfortGamesCeiling = 20
)

// Options tune list shaping, not scoring.
type Options struct {
	TopK            int // recommendations returned per request
	FlexFallbackMin int // widen past the role filter below this many candidates
}

const (
	DefaultTopK            = 8
	DefaultFlexFallbackMin = 3
)

func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.FlexFallbackMin <= 0 {
		o.FlexFallbackMin = DefaultFlexFallbackMin
	}
	return o
}

// Engine scores candidates for the step on the clock. Construct once and
// share across sessions; all fields are read-only after New.
type Engine struct {
	catalog map[string]domain.Champion
	know    Knowledge
	opts    Options
}

func New(champions []domain.Champion, know Knowledge, opts Options) *Engine {
	catalog := make(map[string]domain.Champion, len(champions))
	for _, c := range champions {
		catalog[c.ID] = c
	}
	return &Engine{catalog: catalog, know: know, opts: opts.withDefaults()}
}

// Result carries the ranked list plus any degraded-data warnings. Warnings
// never abort the computation; the missing factor simply contributes zero.
type Result struct {
	Recommendations []domain.Recommendation
	Warnings        []string
}

// scored pairs a recommendation with the raw factor data needed for
// deterministic tie-breaking.
type scored struct {
	rec     domain.Recommendation
	score   float64
	comfort float64
}

// Recommend produces the ranked candidate list for the acting team. If the
// draft is complete or the candidate set is empty the list is empty, not an
// error. Callers must pass a consistent snapshot of the draft.
func (e *Engine) Recommend(s *draft.State) Result {
	step := s.CurrentStep()
	if step == nil {
		return Result{}
	}

	var res Result
	ally := s.Team(step.Team)
	enemy := s.Team(step.Team.Opponent())
	excluded := s.ExcludedSet()

	var actingPlayer *domain.DraftPlayer
	targetRole := domain.Role("")
	if step.ActionType == domain.ActionTypePick {
		slot := ally.NextPickSlot()
		if slot < 0 {
			// Roster full despite an unfinished sequence; the state machine
			// owns that fault, the engine just has nothing to suggest.
			return Result{}
		}
		targetRole = domain.RoleForPickSlot(slot)
		actingPlayer = ally.PlayerForSlot(slot)
		if actingPlayer == nil || len(actingPlayer.ChampionPool) == 0 {
			res.Warnings = append(res.Warnings, "no champion pool data for the acting player; comfort scoring disabled")
		}
	}
	if !e.know.HasMetaData() {
		res.Warnings = append(res.Warnings, "meta tier table is empty; meta scoring disabled")
	}
	if !e.know.HasMatchupData() {
		res.Warnings = append(res.Warnings, "counter/synergy table is empty; matchup scoring disabled")
	}

	candidates := e.candidates(excluded, step.ActionType, targetRole)
	if len(candidates) == 0 {
		return res
	}

	needs := e.teamNeeds(ally)

	ranked := make([]scored, 0, len(candidates))
	for _, champ := range candidates {
		ranked = append(ranked, e.scoreCandidate(champ, step, ally, enemy, actingPlayer, needs))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if ranked[i].comfort != ranked[j].comfort {
			return ranked[i].comfort > ranked[j].comfort
		}
		return ranked[i].rec.ChampionName < ranked[j].rec.ChampionName
	})

	if len(ranked) > e.opts.TopK {
		ranked = ranked[:e.opts.TopK]
	}

	res.Recommendations = make([]domain.Recommendation, len(ranked))
	for i, r := range ranked {
		res.Recommendations[i] = r.rec
	}
	return res
}

// candidates builds the scorable set: every champion not excluded, and for
// picks additionally eligible for the target role unless that filter leaves
// too few options, in which case the filter is abandoned (flex fallback).
func (e *Engine) candidates(excluded map[string]struct{}, action domain.ActionType, role domain.Role) []domain.Champion {
	available := make([]domain.Champion, 0, len(e.catalog))
	for _, c := range e.catalog {
		if _, taken := excluded[c.ID]; !taken {
			available = append(available, c)
		}
	}

	if action != domain.ActionTypePick || role == "" {
		return available
	}

	inRole := make([]domain.Champion, 0, len(available))
	for _, c := range available {
		if c.CanFill(role) {
			inRole = append(inRole, c)
		}
	}
	if len(inRole) < e.opts.FlexFallbackMin {
		return available
	}
	return inRole
}

// factor is one scoring contribution. Reasons surface ordered by bonus.
// Adjustments (the team-need bonus) count toward the score and reasons but
// never decide the category label.
type factor struct {
	category   domain.RecommendationCategory
	bonus      float64
	reason     string
	adjustment bool
}

func (e *Engine) scoreCandidate(champ domain.Champion, step *domain.DraftStep, ally, enemy *draft.TeamState, actingPlayer *domain.DraftPlayer, needs []string) scored {
	var factors []factor

	comfort := 0.0
	if step.ActionType == domain.ActionTypePick && actingPlayer != nil {
		if entry, ok := actingPlayer.PoolEntryFor(champ.ID); ok && entry.GamesPlayed > 0 {
			comfort = comfortBonus(entry)
			factors = append(factors, factor{
				category: domain.CategoryComfort,
				bonus:    comfort,
				reason:   fmt.Sprintf("Comfort pick for %s: %d games at %.1f%% win rate", actingPlayer.Name, entry.GamesPlayed, entry.WinRate),
			})
		}
	}

	if tier, ok := e.know.TierOf(champ.ID); ok {
		if bonus := metaWeight * tierFactor(tier); bonus > 0 {
			factors = append(factors, factor{
				category: domain.CategoryMeta,
				bonus:    bonus,
				reason:   fmt.Sprintf("%s tier in the current meta", tier),
			})
		}
	}

	if step.ActionType == domain.ActionTypePick {
		if countered := e.counteredEnemies(champ.ID, enemy); len(countered) > 0 {
			bonus := math.Min(counterPerMatchup*float64(len(countered)), counterCap)
			factors = append(factors, factor{
				category: domain.CategoryCounter,
				bonus:    bonus,
				reason:   "Counters " + strings.Join(countered, ", "),
			})
		}
		if partners := e.synergyAllies(champ.ID, ally); len(partners) > 0 {
			bonus := math.Min(synergyPerPair*float64(len(partners)), synergyCap)
			factors = append(factors, factor{
				category: domain.CategorySynergy,
				bonus:    bonus,
				reason:   "Pairs well with " + strings.Join(partners, ", "),
			})
		}
		if reason, ok := fillsDamageGap(champ, ally, e.catalog); ok {
			factors = append(factors, factor{
				bonus:      needBonus,
				reason:     reason,
				adjustment: true,
			})
		}
		if champ.IsFlex() {
			factors = append(factors, factor{
				category: domain.CategoryFlex,
				bonus:    flexBonus,
				reason:   "Flexes between " + joinRoles(champ.Roles),
			})
		}
	}

	if step.ActionType == domain.ActionTypeBan {
		if player, entry := bestEnemyComfort(champ.ID, enemy); player != nil {
			bonus := denyWeight * (comfortBonus(*entry) / comfortWeight)
			factors = append(factors, factor{
				category: domain.CategoryDeny,
				bonus:    bonus,
				reason:   fmt.Sprintf("Denies %s's %s (%d games, %.1f%% win rate)", player.Name, champ.Name, entry.GamesPlayed, entry.WinRate),
			})
		}
	}

	sort.SliceStable(factors, func(i, j int) bool { return factors[i].bonus > factors[j].bonus })

	total := 0.0
	reasons := make([]string, 0, len(factors))
	for _, f := range factors {
		total += f.bonus
		reasons = append(reasons, f.reason)
	}

	rec := domain.Recommendation{
		ChampionID:   champ.ID,
		ChampionName: champ.Name,
		Score:        clampScore(total),
		Category:     categoryOf(factors, champ),
		Reasons:      reasons,
		TeamNeeds:    needs,
	}
	if champ.IsFlex() {
		rec.FlexLanes = champ.Roles
	}

	return scored{rec: rec, score: total, comfort: comfort}
}

// comfortBonus scales a pool entry into [0, comfortWeight]. Both the sample
// size and the win rate have to be high for the full bonus; zero recorded
// games contributes nothing.
func comfortBonus(entry domain.PoolEntry) float64 {
	games := float64(entry.GamesPlayed)
	if games > comfortGamesCeiling {
		games = comfortGamesCeiling
	}
	winRate := entry.WinRate / 100
	if winRate < 0 {
		winRate = 0
	} else if winRate > 1 {
		winRate = 1
	}
	return comfortWeight * (games / comfortGamesCeiling) * winRate
}

func tierFactor(tier domain.MetaTier) float64 {
	switch tier {
	case domain.TierS:
		return 1.0
	case domain.TierA:
		return 0.75
	case domain.TierB:
		return 0.5
	case domain.TierC:
		return 0.25
	}
	return 0
}

// counteredEnemies lists the display names of already-picked enemies the
// candidate has a favorable matchup against, in slot order.
func (e *Engine) counteredEnemies(championID string, enemy *draft.TeamState) []string {
	var names []string
	for _, id := range enemy.PickedIDs() {
		if e.know.Counters(championID, id) {
			names = append(names, e.displayName(id))
		}
	}
	return names
}

// synergyAllies lists the display names of committed allies the candidate is
// known to pair with, in slot order.
func (e *Engine) synergyAllies(championID string, ally *draft.TeamState) []string {
	var names []string
	for _, id := range ally.PickedIDs() {
		if e.know.SynergizesWith(championID, id) {
			names = append(names, e.displayName(id))
		}
	}
	return names
}

// bestEnemyComfort finds the enemy player hurt most by banning the champion:
// the one with the highest comfort bonus on it. Returns nils when no enemy
// has recorded games on the champion.
func bestEnemyComfort(championID string, enemy *draft.TeamState) (*domain.DraftPlayer, *domain.PoolEntry) {
	var bestPlayer *domain.DraftPlayer
	var bestEntry *domain.PoolEntry
	best := 0.0
	for i := range enemy.Players {
		player := &enemy.Players[i]
		entry, ok := player.PoolEntryFor(championID)
		if !ok || entry.GamesPlayed == 0 {
			continue
		}
		if bonus := comfortBonus(entry); bonus > best {
			best = bonus
			bestPlayer = player
			e := entry
			bestEntry = &e
		}
	}
	return bestPlayer, bestEntry
}

// fillsDamageGap reports whether the candidate's damage type fills a gap in
// the acting team's committed composition. A gap only exists once at least
// two picks lean one way.
func fillsDamageGap(champ domain.Champion, ally *draft.TeamState, catalog map[string]domain.Champion) (string, bool) {
	picked := ally.PickedIDs()
	if len(picked) < 2 {
		return "", false
	}

	physical, magic := 0, 0
	for _, id := range picked {
		c, ok := catalog[id]
		if !ok {
			continue
		}
		switch c.DamageType {
		case domain.DamagePhysical:
			physical++
		case domain.DamageMagic:
			magic++
		case domain.DamageMixed:
			physical++
			magic++
		}
	}

	brings := func(t domain.DamageType) bool {
		return champ.DamageType == t || champ.DamageType == domain.DamageMixed
	}
	if magic == 0 && brings(domain.DamageMagic) {
		return "Adds missing magic damage", true
	}
	if physical == 0 && brings(domain.DamagePhysical) {
		return "Adds missing physical damage", true
	}
	return "", false
}

// teamNeeds summarises the acting team's current composition gaps. Attached
// to every recommendation so the caller can render them once.
func (e *Engine) teamNeeds(ally *draft.TeamState) []string {
	picked := ally.PickedIDs()
	if len(picked) < 2 {
		return nil
	}

	physical, magic, engage, frontline := 0, 0, 0, 0
	for _, id := range picked {
		c, ok := e.catalog[id]
		if !ok {
			continue
		}
		switch c.DamageType {
		case domain.DamagePhysical:
			physical++
		case domain.DamageMagic:
			magic++
		case domain.DamageMixed:
			physical++
			magic++
		}
		if c.HasTag(domain.TagEngage) {
			engage++
		}
		if c.HasTag(domain.TagFrontline) {
			frontline++
		}
	}

	var needs []string
	if magic == 0 {
		needs = append(needs, "magic damage")
	}
	if physical == 0 {
		needs = append(needs, "physical damage")
	}
	if engage == 0 {
		needs = append(needs, "engage")
	}
	if frontline == 0 {
		needs = append(needs, "frontline")
	}
	return needs
}

// categoryOf picks the label of the single largest non-adjustment
// contribution; factors are already sorted by bonus. A candidate with no
// signal at all falls back to FLEX when it is a flex pick, otherwise META.
func categoryOf(factors []factor, champ domain.Champion) domain.RecommendationCategory {
	for _, f := range factors {
		if !f.adjustment {
			return f.category
		}
	}
	if champ.IsFlex() {
		return domain.CategoryFlex
	}
	return domain.CategoryMeta
}

func (e *Engine) displayName(championID string) string {
	if c, ok := e.catalog[championID]; ok {
		return c.Name
	}
	return championID
}

func clampScore(total float64) int {
	score := int(math.Round(total))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.DisplayName()
	}
	return strings.Join(names, "/")
}
