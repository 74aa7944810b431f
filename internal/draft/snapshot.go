package draft

import "github.com/coachkit/draft-coach/internal/domain"

// Snapshot returns a copy of the draft safe to score against while the
// original keeps mutating under its session lock. Slot arrays and the action
// log are copied; player rosters are read-only reference data and are shared.
func (s *State) Snapshot() *State {
	copied := *s
	copied.Actions = make([]domain.DraftAction, len(s.Actions))
	copy(copied.Actions, s.Actions)
	return &copied
}
