package websocket

import (
	"encoding/json"
	"time"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/service"
)

type MessageType string

const (
	// Client to Server
	MessageTypeJoinSession MessageType = "JOIN_SESSION"
	MessageTypeApplyAction MessageType = "APPLY_ACTION"
	MessageTypeUndoAction  MessageType = "UNDO_ACTION"
	MessageTypeResetDraft  MessageType = "RESET_DRAFT"
	MessageTypeSyncState   MessageType = "SYNC_STATE"

	// Server to Client
	MessageTypeStateSync       MessageType = "STATE_SYNC"
	MessageTypeActionApplied   MessageType = "ACTION_APPLIED"
	MessageTypeRecommendations MessageType = "RECOMMENDATIONS_UPDATED"
	MessageTypeDraftCompleted  MessageType = "DRAFT_COMPLETED"
	MessageTypeError           MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Client to Server payloads

type JoinSessionPayload struct {
	SessionID string `json:"sessionId"`
}

type ApplyActionPayload struct {
	ChampionID string `json:"championId"`
}

// Server to Client payloads

type StateSyncPayload struct {
	Session *service.SessionView `json:"session"`
}

type ActionAppliedPayload struct {
	Action  domain.DraftAction   `json:"action"`
	Session *service.SessionView `json:"session"`
}

type RecommendationsPayload struct {
	Cursor          int                        `json:"cursor"`
	Recommendations *service.RecommendationSet `json:"recommendations"`
}

type DraftCompletedPayload struct {
	Session      *service.SessionView        `json:"session"`
	BlueAnalysis *domain.CompositionAnalysis `json:"blueAnalysis"`
	RedAnalysis  *domain.CompositionAnalysis `json:"redAnalysis"`
	AnalysisText string                      `json:"analysisText"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
