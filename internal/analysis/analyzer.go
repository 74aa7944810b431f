// Package analysis derives post-pick composition aggregates: damage profile,
// power-spike windows, archetype and templated strengths/weaknesses. The
// analyzer never mutates draft state and is recomputed on demand.
package analysis

import (
	"fmt"
	"strings"

	"github.com/coachkit/draft-coach/internal/domain"
)

// Analyzer classifies team compositions against the champion catalog.
// Construct once and share; the catalog is read-only.
type Analyzer struct {
	catalog map[string]domain.Champion
}

func New(champions []domain.Champion) *Analyzer {
	catalog := make(map[string]domain.Champion, len(champions))
	for _, c := range champions {
		catalog[c.ID] = c
	}
	return &Analyzer{catalog: catalog}
}

// Analyze computes the aggregate for one team's committed picks. With zero
// picks it returns an empty analysis (PickCount 0) rather than an error.
func (a *Analyzer) Analyze(teamName string, pickIDs []string) *domain.CompositionAnalysis {
	picks := make([]domain.Champion, 0, len(pickIDs))
	for _, id := range pickIDs {
		if c, ok := a.catalog[id]; ok {
			picks = append(picks, c)
		}
	}

	result := &domain.CompositionAnalysis{
		TeamName:  teamName,
		PickCount: len(picks),
		Archetype: domain.ArchetypeBalanced,
	}
	if len(picks) == 0 {
		return result
	}

	result.DamageProfile = damageProfile(picks)
	result.PowerSpikes = powerSpikes(picks)

	for _, c := range picks {
		if c.HasTag(domain.TagEngage) {
			result.EngageTools = append(result.EngageTools, c.Name)
		}
		if c.HasTag(domain.TagDisengage) {
			result.DisengageTools = append(result.DisengageTools, c.Name)
		}
	}

	result.Archetype = archetype(picks)
	result.Strengths, result.Weaknesses = traits(picks, result)
	return result
}

// damageProfile buckets each pick's primary damage type into one unit:
// physical and magic go to their bucket, true damage to its own, and mixed
// splits half and half between physical and magic. Integer percentages use
// largest-remainder rounding so the three buckets always sum to 100.
func damageProfile(picks []domain.Champion) domain.DamageProfile {
	var physical, magic, trueDmg float64
	for _, c := range picks {
		switch c.DamageType {
		case domain.DamageMagic:
			magic++
		case domain.DamageTrue:
			trueDmg++
		case domain.DamageMixed:
			physical += 0.5
			magic += 0.5
		default:
			physical++
		}
	}

	total := float64(len(picks))
	exact := []float64{physical / total * 100, magic / total * 100, trueDmg / total * 100}
	pct := make([]int, 3)
	sum := 0
	for i, v := range exact {
		pct[i] = int(v)
		sum += pct[i]
	}
	// Hand out the leftover points to the largest remainders; ties go to
	// the earlier bucket so the split is deterministic.
	for sum < 100 {
		best, bestRem := 0, -1.0
		for i, v := range exact {
			if rem := v - float64(pct[i]); rem > bestRem {
				best, bestRem = i, rem
			}
		}
		pct[best]++
		exact[best] = float64(pct[best])
		sum++
	}

	return domain.DamageProfile{PhysicalPct: pct[0], MagicPct: pct[1], TruePct: pct[2]}
}

// powerSpikes returns the windows where at least two champions share a spike
// tag, in early/mid/late order.
func powerSpikes(picks []domain.Champion) []domain.GamePhase {
	var spikes []domain.GamePhase
	for _, phase := range []domain.GamePhase{domain.PhaseEarly, domain.PhaseMid, domain.PhaseLate} {
		count := 0
		for _, c := range picks {
			if c.SpikesAt(phase) {
				count++
			}
		}
		if count >= 2 {
			spikes = append(spikes, phase)
		}
	}
	return spikes
}

// archetype is a priority-ordered rule match; the first matching rule wins,
// so the order is a tie-break policy, not just a heuristic:
//  1. >=3 engage picks          -> teamfight
//  2. >=2 poke picks            -> poke
//  3. >=2 pick-threat picks     -> pick
//  4. >=1 splitpush, <=1 engage -> splitpush
//  5. otherwise                 -> balanced
func archetype(picks []domain.Champion) domain.Archetype {
	count := func(tag domain.ChampionTag) int {
		n := 0
		for _, c := range picks {
			if c.HasTag(tag) {
				n++
			}
		}
		return n
	}

	engage := count(domain.TagEngage)
	switch {
	case engage >= 3:
		return domain.ArchetypeTeamfight
	case count(domain.TagPoke) >= 2:
		return domain.ArchetypePoke
	case count(domain.TagPickThreat) >= 2:
		return domain.ArchetypePick
	case count(domain.TagSplitpush) >= 1 && engage <= 1:
		return domain.ArchetypeSplitpush
	}
	return domain.ArchetypeBalanced
}

// traits generates the templated strength/weakness strings from the
// aggregates already computed.
func traits(picks []domain.Champion, result *domain.CompositionAnalysis) (strengths, weaknesses []string) {
	if len(result.EngageTools) >= 2 {
		strengths = append(strengths, "Reliable engage tools: "+strings.Join(result.EngageTools, ", "))
	}
	for _, phase := range result.PowerSpikes {
		strengths = append(strengths, fmt.Sprintf("Strong %s game power spike", phase))
	}
	if result.Archetype != domain.ArchetypeBalanced {
		strengths = append(strengths, fmt.Sprintf("Clear %s identity", result.Archetype))
	}

	if len(result.EngageTools) == 0 {
		weaknesses = append(weaknesses, "No frontline engage to start fights")
	}
	if len(result.DisengageTools) == 0 {
		weaknesses = append(weaknesses, "Limited disengage against dive compositions")
	}
	// Damage warnings need a committed core, not one early pick.
	if len(picks) >= 3 {
		if result.DamageProfile.MagicPct == 0 {
			weaknesses = append(weaknesses, "Lacks magic damage; stacking armor shuts this team down")
		}
		if result.DamageProfile.PhysicalPct == 0 {
			weaknesses = append(weaknesses, "Lacks physical damage; stacking magic resist shuts this team down")
		}
	}
	if len(result.PowerSpikes) == 0 {
		weaknesses = append(weaknesses, "No shared power spike window")
	}
	return strengths, weaknesses
}
