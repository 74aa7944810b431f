// Package narrative is the boundary to the strategy-narrative collaborator.
// The production generator is an external text-generation service consuming
// a structured summary of the final draft; the core only defines the summary
// shape and ships a deterministic template fallback.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/coachkit/draft-coach/internal/domain"
)

// DraftSummary is the structured view handed to the generator.
type DraftSummary struct {
	BlueTeam     string
	RedTeam      string
	BlueAnalysis *domain.CompositionAnalysis
	RedAnalysis  *domain.CompositionAnalysis
	IsComplete   bool
}

// Generator turns a draft summary into prose. Implementations may call out
// over the network; the template default never does.
type Generator interface {
	Narrate(ctx context.Context, summary DraftSummary) (string, error)
}

// TemplateGenerator renders a fixed-form narrative with no external calls.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Narrate(_ context.Context, summary DraftSummary) (string, error) {
	var b strings.Builder

	writeTeam := func(name string, a *domain.CompositionAnalysis) {
		if a == nil || a.PickCount == 0 {
			fmt.Fprintf(&b, "%s has not committed any picks yet.", name)
			return
		}
		fmt.Fprintf(&b, "%s is drafting a %s composition (%d%% physical / %d%% magic damage).",
			name, a.Archetype, a.DamageProfile.PhysicalPct, a.DamageProfile.MagicPct)
		if len(a.Strengths) > 0 {
			fmt.Fprintf(&b, " Key strength: %s.", lowerFirst(a.Strengths[0]))
		}
		if len(a.Weaknesses) > 0 {
			fmt.Fprintf(&b, " Main concern: %s.", lowerFirst(a.Weaknesses[0]))
		}
	}

	writeTeam(summary.BlueTeam, summary.BlueAnalysis)
	b.WriteString(" ")
	writeTeam(summary.RedTeam, summary.RedAnalysis)

	if summary.IsComplete && summary.BlueAnalysis != nil && summary.RedAnalysis != nil {
		spikeEdge := compareSpikes(summary.BlueAnalysis, summary.RedAnalysis)
		if spikeEdge != "" {
			b.WriteString(" ")
			b.WriteString(spikeEdge)
		}
	}

	return b.String(), nil
}

func compareSpikes(blue, red *domain.CompositionAnalysis) string {
	blueEarly := hasSpike(blue, domain.PhaseEarly)
	redLate := hasSpike(red, domain.PhaseLate)
	switch {
	case blueEarly && redLate:
		return fmt.Sprintf("%s should force tempo early before %s scales.", blue.TeamName, red.TeamName)
	case hasSpike(red, domain.PhaseEarly) && hasSpike(blue, domain.PhaseLate):
		return fmt.Sprintf("%s should force tempo early before %s scales.", red.TeamName, blue.TeamName)
	}
	return ""
}

func hasSpike(a *domain.CompositionAnalysis, phase domain.GamePhase) bool {
	for _, p := range a.PowerSpikes {
		if p == phase {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
