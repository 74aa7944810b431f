package service

import (
	"context"
	"fmt"
	"log"

	"github.com/coachkit/draft-coach/internal/analysis"
	"github.com/coachkit/draft-coach/internal/config"
	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/draft"
	"github.com/coachkit/draft-coach/internal/engine"
	"github.com/coachkit/draft-coach/internal/narrative"
	"github.com/coachkit/draft-coach/internal/repository"
	"github.com/coachkit/draft-coach/internal/session"
	"github.com/google/uuid"
)

// DraftService carries the session-scoped draft operations. The engine and
// analyzer are pure and shared across sessions; all mutation happens under
// the owning session's lock.
type DraftService struct {
	sessions *session.Manager
	engine   *engine.Engine
	analyzer *analysis.Analyzer
	narrator narrative.Generator
	poolRepo repository.PlayerPoolRepository
	catalog  map[string]domain.Champion
}

func NewDraftService(ctx context.Context, repos *repository.Repositories, narrator narrative.Generator, cfg *config.Config) (*DraftService, error) {
	championPtrs, err := repos.Champion.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading champion catalog: %w", err)
	}
	champions := make([]domain.Champion, len(championPtrs))
	catalog := make(map[string]domain.Champion, len(championPtrs))
	for i, c := range championPtrs {
		champions[i] = *c
		catalog[c.ID] = *c
	}

	ratings, err := repos.Knowledge.GetMetaRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading meta ratings: %w", err)
	}
	matchups, err := repos.Knowledge.GetMatchups(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading matchups: %w", err)
	}

	opts := engine.Options{
		TopK:            cfg.RecommendationTopK,
		FlexFallbackMin: cfg.FlexFallbackMin,
	}

	return &DraftService{
		sessions: session.NewManager(),
		engine:   engine.New(champions, engine.NewKnowledge(ratings, matchups), opts),
		analyzer: analysis.New(champions),
		narrator: narrator,
		poolRepo: repos.PlayerPool,
		catalog:  catalog,
	}, nil
}

type PlayerInput struct {
	ID   string             `json:"id"`
	Name string             `json:"name"`
	Role domain.Role        `json:"role"`
	Pool []domain.PoolEntry `json:"pool,omitempty"`
}

type CreateSessionInput struct {
	BlueName    string        `json:"blueName"`
	RedName     string        `json:"redName"`
	BluePlayers []PlayerInput `json:"bluePlayers"`
	RedPlayers  []PlayerInput `json:"redPlayers"`
}

// TeamView is the caller-facing projection of one team's draft state.
type TeamView struct {
	Name    string               `json:"name"`
	Bans    []string             `json:"bans"`
	Picks   []string             `json:"picks"`
	Players []domain.DraftPlayer `json:"players"`
}

// SessionView is the caller-facing projection of a whole session.
type SessionView struct {
	ID          uuid.UUID            `json:"id"`
	Blue        TeamView             `json:"blue"`
	Red         TeamView             `json:"red"`
	Cursor      int                  `json:"cursor"`
	CurrentStep *domain.DraftStep    `json:"currentStep"`
	IsComplete  bool                 `json:"isComplete"`
	Actions     []domain.DraftAction `json:"actions"`
}

// RecommendationSet is the full response of GetRecommendations: the ranked
// list plus both composition analyses and the narrative text.
type RecommendationSet struct {
	Recommendations []domain.Recommendation     `json:"recommendations"`
	Warnings        []string                    `json:"warnings,omitempty"`
	AnalysisText    string                      `json:"analysisText"`
	BlueAnalysis    *domain.CompositionAnalysis `json:"blueAnalysis"`
	RedAnalysis     *domain.CompositionAnalysis `json:"redAnalysis"`
}

// CreateSession starts a draft. Players submitted without an explicit pool
// are resolved through the pool repository; a missing pool is a degraded
// condition, not a failure.
func (s *DraftService) CreateSession(ctx context.Context, input CreateSessionInput) (*SessionView, error) {
	blue, err := s.resolvePlayers(ctx, input.BluePlayers)
	if err != nil {
		return nil, err
	}
	red, err := s.resolvePlayers(ctx, input.RedPlayers)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.Create(input.BlueName, input.RedName, blue, red)
	return s.view(sess), nil
}

func (s *DraftService) resolvePlayers(ctx context.Context, inputs []PlayerInput) ([]domain.DraftPlayer, error) {
	players := make([]domain.DraftPlayer, len(inputs))
	for i, in := range inputs {
		pool := in.Pool
		if len(pool) == 0 && in.ID != "" && s.poolRepo != nil {
			fetched, err := s.poolRepo.GetByPlayerID(ctx, in.ID)
			if err != nil {
				return nil, fmt.Errorf("resolving pool for player %s: %w", in.ID, err)
			}
			pool = fetched
		}
		role := in.Role
		if role == "" {
			role = domain.RoleForPickSlot(i)
		}
		players[i] = domain.DraftPlayer{ID: in.ID, Name: in.Name, Role: role, ChampionPool: pool}
	}
	return players, nil
}

// GetSession returns the current state of a session.
func (s *DraftService) GetSession(_ context.Context, id uuid.UUID) (*SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ApplyAction applies a champion to the step on the clock. Unknown champion
// ids are rejected before they reach the state machine.
func (s *DraftService) ApplyAction(_ context.Context, id uuid.UUID, championID string) (*SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	if _, ok := s.catalog[championID]; !ok {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrInvalidAction, domain.ErrUnknownChampion, championID)
	}
	if err := sess.Apply(championID); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// UndoAction reverses the last action; a no-op when the log is empty.
func (s *DraftService) UndoAction(_ context.Context, id uuid.UUID) (*SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	if err := sess.Undo(); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ResetDraft clears the session back to an empty draft. Always succeeds for
// a live session.
func (s *DraftService) ResetDraft(_ context.Context, id uuid.UUID) (*SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Reset()
	return s.view(sess), nil
}

// GetRecommendations recomputes the ranked list from the session's current
// state. Nothing is cached: the result always reflects the last applied
// action.
func (s *DraftService) GetRecommendations(ctx context.Context, id uuid.UUID) (*RecommendationSet, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()

	result := s.engine.Recommend(snap)
	blue := s.analyzer.Analyze(snap.Blue.Name, snap.Blue.PickedIDs())
	red := s.analyzer.Analyze(snap.Red.Name, snap.Red.PickedIDs())

	text, err := s.narrator.Narrate(ctx, narrative.DraftSummary{
		BlueTeam:     snap.Blue.Name,
		RedTeam:      snap.Red.Name,
		BlueAnalysis: blue,
		RedAnalysis:  red,
		IsComplete:   snap.IsComplete(),
	})
	if err != nil {
		// Narrative is garnish; recommendations must not fail with it.
		log.Printf("WARN [draft.GetRecommendations] narrative generation failed: %v", err)
		text = ""
	}

	return &RecommendationSet{
		Recommendations: result.Recommendations,
		Warnings:        result.Warnings,
		AnalysisText:    text,
		BlueAnalysis:    blue,
		RedAnalysis:     red,
	}, nil
}

// GetCompositionAnalysis returns both teams' aggregates for the current
// state; valid at any point of the draft.
func (s *DraftService) GetCompositionAnalysis(_ context.Context, id uuid.UUID) (blue, red *domain.CompositionAnalysis, err error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, nil, err
	}
	snap := sess.Snapshot()
	return s.analyzer.Analyze(snap.Blue.Name, snap.Blue.PickedIDs()),
		s.analyzer.Analyze(snap.Red.Name, snap.Red.PickedIDs()),
		nil
}

// DeleteSession discards a session and its in-memory history.
func (s *DraftService) DeleteSession(_ context.Context, id uuid.UUID) {
	s.sessions.Delete(id)
}

func (s *DraftService) view(sess *session.Session) *SessionView {
	snap := sess.Snapshot()
	return &SessionView{
		ID:          sess.ID,
		Blue:        teamView(&snap.Blue),
		Red:         teamView(&snap.Red),
		Cursor:      snap.Cursor,
		CurrentStep: snap.CurrentStep(),
		IsComplete:  snap.IsComplete(),
		Actions:     snap.Actions,
	}
}

func teamView(t *draft.TeamState) TeamView {
	return TeamView{
		Name:    t.Name,
		Bans:    t.Bans[:],
		Picks:   t.Picks[:],
		Players: t.Players,
	}
}
