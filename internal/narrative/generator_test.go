package narrative_test

import (
	"context"
	"testing"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/narrative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateGenerator_EmptyDraft(t *testing.T) {
	g := narrative.NewTemplateGenerator()

	text, err := g.Narrate(context.Background(), narrative.DraftSummary{
		BlueTeam: "Blue",
		RedTeam:  "Red",
	})
	require.NoError(t, err)
	assert.Contains(t, text, "Blue has not committed any picks yet.")
	assert.Contains(t, text, "Red has not committed any picks yet.")
}

func TestTemplateGenerator_DescribesCompositions(t *testing.T) {
	g := narrative.NewTemplateGenerator()

	summary := narrative.DraftSummary{
		BlueTeam: "Blue",
		RedTeam:  "Red",
		BlueAnalysis: &domain.CompositionAnalysis{
			TeamName:      "Blue",
			PickCount:     5,
			Archetype:     domain.ArchetypeTeamfight,
			DamageProfile: domain.DamageProfile{PhysicalPct: 60, MagicPct: 40},
			Strengths:     []string{"Reliable engage tools: Malphite, Leona"},
			Weaknesses:    []string{"No shared power spike window"},
		},
		RedAnalysis: &domain.CompositionAnalysis{
			TeamName:      "Red",
			PickCount:     5,
			Archetype:     domain.ArchetypePoke,
			DamageProfile: domain.DamageProfile{PhysicalPct: 20, MagicPct: 80},
		},
	}

	text, err := g.Narrate(context.Background(), summary)
	require.NoError(t, err)
	assert.Contains(t, text, "Blue is drafting a teamfight composition (60% physical / 40% magic damage).")
	assert.Contains(t, text, "Key strength: reliable engage tools")
	assert.Contains(t, text, "Main concern: no shared power spike window.")
	assert.Contains(t, text, "Red is drafting a poke composition")
}

func TestTemplateGenerator_TempoAdviceOnCompletion(t *testing.T) {
	g := narrative.NewTemplateGenerator()

	summary := narrative.DraftSummary{
		BlueTeam: "Blue",
		RedTeam:  "Red",
		BlueAnalysis: &domain.CompositionAnalysis{
			TeamName:      "Blue",
			PickCount:     5,
			Archetype:     domain.ArchetypeBalanced,
			DamageProfile: domain.DamageProfile{PhysicalPct: 100},
			PowerSpikes:   []domain.GamePhase{domain.PhaseEarly},
		},
		RedAnalysis: &domain.CompositionAnalysis{
			TeamName:      "Red",
			PickCount:     5,
			Archetype:     domain.ArchetypeBalanced,
			DamageProfile: domain.DamageProfile{MagicPct: 100},
			PowerSpikes:   []domain.GamePhase{domain.PhaseLate},
		},
		IsComplete: true,
	}

	text, err := g.Narrate(context.Background(), summary)
	require.NoError(t, err)
	assert.Contains(t, text, "Blue should force tempo early before Red scales.")

	// The same spike spread mid-draft stays silent on tempo.
	summary.IsComplete = false
	text, err = g.Narrate(context.Background(), summary)
	require.NoError(t, err)
	assert.NotContains(t, text, "force tempo")
}

func TestTemplateGenerator_Deterministic(t *testing.T) {
	g := narrative.NewTemplateGenerator()
	summary := narrative.DraftSummary{BlueTeam: "Blue", RedTeam: "Red"}

	first, err := g.Narrate(context.Background(), summary)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := g.Narrate(context.Background(), summary)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
