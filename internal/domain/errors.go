package domain

import "errors"

// Draft action errors. ErrInvalidAction covers every recoverable rejection of
// a mutating call: out of turn, unavailable champion, or draft already
// complete. The state machine is left unmodified in all of these cases.
var (
	ErrInvalidAction       = errors.New("invalid draft action")
	ErrDraftComplete       = errors.New("draft is already complete")
	ErrChampionUnavailable = errors.New("champion is already picked or banned")
	ErrUnknownChampion     = errors.New("unknown champion")
)

// ErrSequenceDesync flags the should-never-happen case where the sequence
// table claims a team should act but that team's target array has no empty
// slot. It indicates broken apply/undo bookkeeping and invalidates the
// session; it is never wrapped as an ErrInvalidAction.
var ErrSequenceDesync = errors.New("draft sequence desync")

// Session errors
var (
	ErrSessionNotFound    = errors.New("draft session not found")
	ErrSessionInvalidated = errors.New("draft session invalidated after desync")
)
