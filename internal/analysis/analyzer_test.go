package analysis_test

import (
	"testing"

	"github.com/coachkit/draft-coach/internal/analysis"
	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededAnalyzer() *analysis.Analyzer {
	return analysis.New(refdata.Champions())
}

func TestAnalyzer_EmptyTeam(t *testing.T) {
	result := seededAnalyzer().Analyze("Blue", nil)

	assert.Equal(t, "Blue", result.TeamName)
	assert.Equal(t, 0, result.PickCount)
	assert.Equal(t, domain.ArchetypeBalanced, result.Archetype)
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.Weaknesses)
}

func TestAnalyzer_UnknownPicksAreSkipped(t *testing.T) {
	result := seededAnalyzer().Analyze("Blue", []string{"NotAChampion", "Aatrox"})

	assert.Equal(t, 1, result.PickCount)
}

func TestAnalyzer_DamageProfileSumsTo100(t *testing.T) {
	tests := []struct {
		name  string
		picks []string
	}{
		{"all physical", []string{"Aatrox", "Fiora", "Zed", "Jinx", "Caitlyn"}},
		{"mixed splits", []string{"Jax", "Ezreal", "KaiSa"}},
		{"two picks", []string{"Aatrox", "Orianna"}},
		{"one mixed pick", []string{"Jax"}},
		{"full seeded comp", []string{"Aatrox", "Viego", "Orianna", "Jinx", "Thresh"}},
	}

	a := seededAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze("Blue", tt.picks)
			p := result.DamageProfile
			assert.Equal(t, 100, p.PhysicalPct+p.MagicPct+p.TruePct,
				"profile %+v must sum to 100", p)
		})
	}
}

func TestAnalyzer_MixedDamageSplitsEvenly(t *testing.T) {
	// Jax and Ezreal are both mixed: half a unit each way, so the split is
	// an even 50/50.
	result := seededAnalyzer().Analyze("Blue", []string{"Jax", "Ezreal"})

	assert.Equal(t, 50, result.DamageProfile.PhysicalPct)
	assert.Equal(t, 50, result.DamageProfile.MagicPct)
	assert.Equal(t, 0, result.DamageProfile.TruePct)
}

func TestAnalyzer_AllPhysicalCompIsFlagged(t *testing.T) {
	result := seededAnalyzer().Analyze("Blue", []string{"Aatrox", "Viego", "Zed", "Jinx", "Caitlyn"})

	assert.Equal(t, 100, result.DamageProfile.PhysicalPct)
	assert.Equal(t, 0, result.DamageProfile.MagicPct)

	joined := ""
	for _, w := range result.Weaknesses {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "Lacks magic damage")
}

func TestAnalyzer_DamageWarningNeedsCommittedCore(t *testing.T) {
	// Two physical picks lean one way but the comp is not committed yet.
	result := seededAnalyzer().Analyze("Blue", []string{"Aatrox", "Viego"})

	for _, w := range result.Weaknesses {
		assert.NotContains(t, w, "Lacks magic damage")
	}
}

func TestAnalyzer_PowerSpikes(t *testing.T) {
	// Fiora, Jax and Jinx all spike late; nothing shares early or mid.
	result := seededAnalyzer().Analyze("Blue", []string{"Fiora", "Jax", "Jinx"})

	require.Equal(t, []domain.GamePhase{domain.PhaseLate}, result.PowerSpikes)

	joined := ""
	for _, s := range result.Strengths {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "late game power spike")
}

func TestAnalyzer_NoSharedSpikeIsAWeakness(t *testing.T) {
	// Caitlyn spikes early/late, Orianna mid/late: late is shared but
	// a single pick never spikes alone.
	result := seededAnalyzer().Analyze("Blue", []string{"Caitlyn", "Zed"})

	joined := ""
	for _, w := range result.Weaknesses {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "No shared power spike")
}

func TestAnalyzer_Archetypes(t *testing.T) {
	tests := []struct {
		name     string
		picks    []string
		expected domain.Archetype
	}{
		{
			name:     "three engage champions read as teamfight",
			picks:    []string{"Malphite", "Sejuani", "Leona", "Jinx"},
			expected: domain.ArchetypeTeamfight,
		},
		{
			name:     "double poke reads as poke",
			picks:    []string{"Caitlyn", "Viktor"},
			expected: domain.ArchetypePoke,
		},
		{
			name:     "double pick threat reads as pick",
			picks:    []string{"Ahri", "KhaZix"},
			expected: domain.ArchetypePick,
		},
		{
			name:     "splitpusher without engage reads as splitpush",
			picks:    []string{"Fiora", "Viego", "Jinx"},
			expected: domain.ArchetypeSplitpush,
		},
		{
			name:     "teamfight outranks poke when both match",
			picks:    []string{"Malphite", "Sejuani", "Leona", "Caitlyn", "Viktor"},
			expected: domain.ArchetypeTeamfight,
		},
		{
			name:     "nothing matches reads as balanced",
			picks:    []string{"Jinx", "Renekton"},
			expected: domain.ArchetypeBalanced,
		},
	}

	a := seededAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze("Blue", tt.picks)
			assert.Equal(t, tt.expected, result.Archetype)
		})
	}
}

func TestAnalyzer_EngageAndDisengageTools(t *testing.T) {
	result := seededAnalyzer().Analyze("Blue", []string{"Malphite", "Rakan", "Jinx"})

	assert.Equal(t, []string{"Malphite", "Rakan"}, result.EngageTools)
	assert.Equal(t, []string{"Rakan"}, result.DisengageTools)

	joined := ""
	for _, s := range result.Strengths {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "Reliable engage tools")
}

func TestAnalyzer_NoEngageIsAWeakness(t *testing.T) {
	result := seededAnalyzer().Analyze("Blue", []string{"Jinx", "Caitlyn"})

	joined := ""
	for _, w := range result.Weaknesses {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "No frontline engage")
}
