package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024
)

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// mu guards sessionID, joined, and closed. The hub goroutine writes the
	// session fields on a successful join while the read pump checks them per
	// message; closed keeps sends and Close from racing on the send channel.
	mu        sync.Mutex
	sessionID uuid.UUID
	joined    bool
	closed    bool
}

func (c *Client) session() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID, c.joined
}

func (c *Client) setSession(id uuid.UUID) {
	c.mu.Lock()
	c.sessionID = id
	c.joined = true
	c.mu.Unlock()
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.drop()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("failed to unmarshal message: %v", err)
			continue
		}

		c.handleMessage(&msg)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeJoinSession:
		var payload JoinSessionPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("INVALID_PAYLOAD", "Invalid join session payload")
			return
		}
		sessionID, err := uuid.Parse(payload.SessionID)
		if err != nil {
			c.sendError("INVALID_PAYLOAD", "Invalid session id")
			return
		}
		select {
		case c.hub.joinSession <- &JoinSessionRequest{Client: c, SessionID: sessionID}:
		case <-c.hub.done:
		}

	case MessageTypeApplyAction:
		if _, joined := c.session(); !joined {
			c.sendError("NOT_JOINED", "Join a session first")
			return
		}
		var payload ApplyActionPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("INVALID_PAYLOAD", "Invalid apply action payload")
			return
		}
		c.hub.handleApply(c, payload.ChampionID)

	case MessageTypeUndoAction:
		if _, joined := c.session(); !joined {
			c.sendError("NOT_JOINED", "Join a session first")
			return
		}
		c.hub.handleUndo(c)

	case MessageTypeResetDraft:
		if _, joined := c.session(); !joined {
			c.sendError("NOT_JOINED", "Join a session first")
			return
		}
		c.hub.handleReset(c)

	case MessageTypeSyncState:
		if _, joined := c.session(); !joined {
			c.sendError("NOT_JOINED", "Join a session first")
			return
		}
		c.hub.sendStateSync(c)

	default:
		c.sendError("UNKNOWN_TYPE", "Unknown message type")
	}
}

// drop hands the client back to the hub for cleanup. Once the hub loop has
// exited the unregister channel is never drained again, so the send races
// against hub shutdown instead of blocking forever.
func (c *Client) drop() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}

func (c *Client) sendMessage(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal message: %v", err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		// Slow consumer; drop the message rather than block the hub.
		log.Printf("dropping message to slow websocket client")
	}
}

func (c *Client) sendError(code, message string) {
	msg, err := NewMessage(MessageTypeError, ErrorPayload{Code: code, Message: message})
	if err != nil {
		return
	}
	c.sendMessage(msg)
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
