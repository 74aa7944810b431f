package testutil

import (
	"context"
	"testing"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/service"
)

// BluePlayers returns a blue-side roster whose pools resolve from the
// seeded reference data.
func BluePlayers() []service.PlayerInput {
	return []service.PlayerInput{
		{ID: "demo-top-blue", Name: "Stone", Role: domain.RoleTop},
		{ID: "demo-jungle-blue", Name: "Haze", Role: domain.RoleJungle},
		{ID: "demo-mid-blue", Name: "Clock", Role: domain.RoleMid},
		{ID: "demo-adc-blue", Name: "Spark", Role: domain.RoleADC},
		{ID: "demo-support-blue", Name: "Lantern", Role: domain.RoleSupport},
	}
}

// RedPlayers returns a red-side roster whose pools resolve from the
// seeded reference data.
func RedPlayers() []service.PlayerInput {
	return []service.PlayerInput{
		{ID: "demo-top-red", Name: "Anvil", Role: domain.RoleTop},
		{ID: "demo-jungle-red", Name: "Flag", Role: domain.RoleJungle},
		{ID: "demo-mid-red", Name: "Orb", Role: domain.RoleMid},
		{ID: "demo-adc-red", Name: "Net", Role: domain.RoleADC},
		{ID: "demo-support-red", Name: "Hook", Role: domain.RoleSupport},
	}
}

// SessionInput builds a create-session request with both demo rosters.
func SessionInput() service.CreateSessionInput {
	return service.CreateSessionInput{
		BlueName:    "Blue Demo",
		RedName:     "Red Demo",
		BluePlayers: BluePlayers(),
		RedPlayers:  RedPlayers(),
	}
}

// ScriptedDraft is a legal sequence of champion IDs covering all twenty
// draft steps, one per step in order.
func ScriptedDraft() []string {
	return []string{
		// First ban phase
		"Zed", "Ahri", "Camille", "Gnar", "Varus", "Janna",
		// First pick phase
		"Aatrox", "Malphite", "JarvanIV", "Viego", "Orianna", "Syndra",
		// Second ban phase
		"Galio", "Braum", "Maokai", "Lulu",
		// Second pick phase
		"Caitlyn", "Jinx", "Thresh", "Nautilus",
	}
}

// PlayDraft applies the first n scripted actions to a session.
func PlayDraft(t *testing.T, drafts *service.DraftService, session *service.SessionView, n int) *service.SessionView {
	t.Helper()

	view := session
	script := ScriptedDraft()
	if n > len(script) {
		n = len(script)
	}
	for i := 0; i < n; i++ {
		var err error
		view, err = drafts.ApplyAction(context.Background(), session.ID, script[i])
		if err != nil {
			t.Fatalf("failed to apply scripted action %d (%s): %v", i, script[i], err)
		}
	}
	return view
}
