// Package websocket carries the live draft channel: clients join a session,
// submit draft commands, and every member of the session receives state
// syncs plus freshly recomputed recommendations after each mutation.
package websocket

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/service"
	"github.com/google/uuid"
)

type Hub struct {
	clients  map[*Client]bool
	sessions map[uuid.UUID]map[*Client]bool

	register    chan *Client
	unregister  chan *Client
	joinSession chan *JoinSessionRequest
	stop        chan struct{}
	done        chan struct{}
	stopped     bool

	drafts *service.DraftService
	mu     sync.RWMutex
}

type JoinSessionRequest struct {
	Client    *Client
	SessionID uuid.UUID
}

func NewHub(drafts *service.DraftService) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		sessions:    make(map[uuid.UUID]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		joinSession: make(chan *JoinSessionRequest),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		drafts:      drafts,
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.sessions = make(map[uuid.UUID]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					if sessionID, joined := client.session(); joined {
						if members, ok := h.sessions[sessionID]; ok {
							delete(members, client)
							if len(members) == 0 {
								delete(h.sessions, sessionID)
							}
						}
					}
					client.Close()
				}
			}
			h.mu.Unlock()

		case req := <-h.joinSession:
			h.handleJoin(req)
		}
	}
}

// Stop gracefully shuts down the hub.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

func (h *Hub) handleJoin(req *JoinSessionRequest) {
	view, err := h.drafts.GetSession(context.Background(), req.SessionID)
	if err != nil {
		req.Client.sendError("SESSION_NOT_FOUND", "Draft session not found")
		return
	}

	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	req.Client.setSession(req.SessionID)
	if h.sessions[req.SessionID] == nil {
		h.sessions[req.SessionID] = make(map[*Client]bool)
	}
	h.sessions[req.SessionID][req.Client] = true
	h.mu.Unlock()

	if msg, err := NewMessage(MessageTypeStateSync, StateSyncPayload{Session: view}); err == nil {
		req.Client.sendMessage(msg)
	}
}

func (h *Hub) handleApply(client *Client, championID string) {
	ctx := context.Background()
	sessionID, _ := client.session()
	view, err := h.drafts.ApplyAction(ctx, sessionID, championID)
	if err != nil {
		client.sendError(errorCode(err), err.Error())
		return
	}

	action := view.Actions[len(view.Actions)-1]
	h.broadcast(sessionID, MessageTypeActionApplied, ActionAppliedPayload{Action: action, Session: view})
	h.pushRecommendations(ctx, sessionID, view)
}

func (h *Hub) handleUndo(client *Client) {
	ctx := context.Background()
	sessionID, _ := client.session()
	view, err := h.drafts.UndoAction(ctx, sessionID)
	if err != nil {
		client.sendError(errorCode(err), err.Error())
		return
	}
	h.broadcast(sessionID, MessageTypeStateSync, StateSyncPayload{Session: view})
	h.pushRecommendations(ctx, sessionID, view)
}

func (h *Hub) handleReset(client *Client) {
	ctx := context.Background()
	sessionID, _ := client.session()
	view, err := h.drafts.ResetDraft(ctx, sessionID)
	if err != nil {
		client.sendError(errorCode(err), err.Error())
		return
	}
	h.broadcast(sessionID, MessageTypeStateSync, StateSyncPayload{Session: view})
	h.pushRecommendations(ctx, sessionID, view)
}

func (h *Hub) sendStateSync(client *Client) {
	sessionID, _ := client.session()
	view, err := h.drafts.GetSession(context.Background(), sessionID)
	if err != nil {
		client.sendError(errorCode(err), err.Error())
		return
	}
	if msg, err := NewMessage(MessageTypeStateSync, StateSyncPayload{Session: view}); err == nil {
		client.sendMessage(msg)
	}
}

// pushRecommendations recomputes and broadcasts the ranked list for the new
// state; on completion it broadcasts the final analyses instead.
func (h *Hub) pushRecommendations(ctx context.Context, sessionID uuid.UUID, view *service.SessionView) {
	set, err := h.drafts.GetRecommendations(ctx, sessionID)
	if err != nil {
		log.Printf("ERROR [ws.recommendations] session=%s: %v", sessionID, err)
		return
	}

	if view.IsComplete {
		h.broadcast(sessionID, MessageTypeDraftCompleted, DraftCompletedPayload{
			Session:      view,
			BlueAnalysis: set.BlueAnalysis,
			RedAnalysis:  set.RedAnalysis,
			AnalysisText: set.AnalysisText,
		})
		return
	}
	h.broadcast(sessionID, MessageTypeRecommendations, RecommendationsPayload{
		Cursor:          view.Cursor,
		Recommendations: set,
	})
}

func (h *Hub) broadcast(sessionID uuid.UUID, msgType MessageType, payload interface{}) {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		log.Printf("ERROR [ws.broadcast]: %v", err)
		return
	}

	h.mu.RLock()
	members := make([]*Client, 0, len(h.sessions[sessionID]))
	for client := range h.sessions[sessionID] {
		members = append(members, client)
	}
	h.mu.RUnlock()

	for _, client := range members {
		client.sendMessage(msg)
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return "SESSION_NOT_FOUND"
	case errors.Is(err, domain.ErrSessionInvalidated), errors.Is(err, domain.ErrSequenceDesync):
		return "SESSION_INVALIDATED"
	case errors.Is(err, domain.ErrChampionUnavailable):
		return "CHAMPION_UNAVAILABLE"
	case errors.Is(err, domain.ErrInvalidAction):
		return "INVALID_ACTION"
	}
	return "INTERNAL_ERROR"
}
