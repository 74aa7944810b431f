package domain

type Side string

const (
	SideBlue Side = "blue"
	SideRed  Side = "red"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideBlue {
		return SideRed
	}
	return SideBlue
}

type ActionType string

const (
	ActionTypeBan  ActionType = "ban"
	ActionTypePick ActionType = "pick"
)

// DraftStep is a single step in the fixed draft sequence.
type DraftStep struct {
	Index      int        `json:"index"`
	Team       Side       `json:"team"`
	ActionType ActionType `json:"actionType"`
	PhaseLabel string     `json:"phaseLabel"`
}

// DraftSequence defines the 20-step pro play draft order.
var DraftSequence = []DraftStep{
	// Ban Phase 1 (6 bans: B, RR, BB, R)
	{0, SideBlue, ActionTypeBan, "Ban Phase 1"},
	{1, SideRed, ActionTypeBan, "Ban Phase 1"},
	{2, SideRed, ActionTypeBan, "Ban Phase 1"},
	{3, SideBlue, ActionTypeBan, "Ban Phase 1"},
	{4, SideBlue, ActionTypeBan, "Ban Phase 1"},
	{5, SideRed, ActionTypeBan, "Ban Phase 1"},
	// Pick Phase 1 (6 picks: B, RR, BB, R)
	{6, SideBlue, ActionTypePick, "Pick Phase 1"},
	{7, SideRed, ActionTypePick, "Pick Phase 1"},
	{8, SideRed, ActionTypePick, "Pick Phase 1"},
	{9, SideBlue, ActionTypePick, "Pick Phase 1"},
	{10, SideBlue, ActionTypePick, "Pick Phase 1"},
	{11, SideRed, ActionTypePick, "Pick Phase 1"},
	// Ban Phase 2 (4 bans: R, BB, R)
	{12, SideRed, ActionTypeBan, "Ban Phase 2"},
	{13, SideBlue, ActionTypeBan, "Ban Phase 2"},
	{14, SideBlue, ActionTypeBan, "Ban Phase 2"},
	{15, SideRed, ActionTypeBan, "Ban Phase 2"},
	// Pick Phase 2 (4 picks: R, BB, R)
	{16, SideRed, ActionTypePick, "Pick Phase 2"},
	{17, SideBlue, ActionTypePick, "Pick Phase 2"},
	{18, SideBlue, ActionTypePick, "Pick Phase 2"},
	{19, SideRed, ActionTypePick, "Pick Phase 2"},
}

// StepAt returns the draft step for a given cursor position, or nil when the
// index falls outside the sequence. A nil step at the cursor means the draft
// is complete.
func StepAt(index int) *DraftStep {
	if index < 0 || index >= len(DraftSequence) {
		return nil
	}
	return &DraftSequence[index]
}

// TotalSteps returns the number of steps in a pro play draft.
func TotalSteps() int {
	return len(DraftSequence)
}

// DraftAction is an append-only log entry recording one applied step.
type DraftAction struct {
	StepIndex  int        `json:"stepIndex"`
	Team       Side       `json:"team"`
	ActionType ActionType `json:"actionType"`
	ChampionID string     `json:"championId"`
}
