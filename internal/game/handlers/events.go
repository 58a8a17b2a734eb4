package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/shared/config"
	"github.com/Montyshaa/Sumeris/internal/shared/response"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second
)

// EventsHandler upgrades the request to a WebSocket and streams engine
// event batches for the authenticated player.
type EventsHandler struct {
	hub      *game.Hub
	upgrader websocket.Upgrader
}

func NewEventsHandler(hub *game.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == config.GlobalConfig.Frontend.URL
			},
		},
	}
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "game_events", "remote_addr", r.RemoteAddr)

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	logger = logger.With("player_id", playerID)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	logger.Info("Event stream connected")

	sub := h.hub.Subscribe(playerID)
	done := make(chan struct{})

	// Reader exists only to observe close frames and pongs
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.hub.Unsubscribe(sub)
		if err := conn.Close(); err != nil {
			logger.Debug("Failed to close WebSocket", "error", err)
		}
		logger.Info("Event stream disconnected")
	}()

	for {
		select {
		case <-done:
			return
		case events, ok := <-sub.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(events); err != nil {
				logger.Debug("Failed to write event batch", "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
