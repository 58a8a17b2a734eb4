package game

import (
	"log/slog"
	"sync"
)

const subscriberBuffer = 16

// Subscription is one WebSocket client's event feed.
type Subscription struct {
	C        chan []Event
	playerID int
}

// Hub fans engine events out to a player's connected WebSocket clients.
// Publishing never blocks the simulation; a subscriber that falls behind
// loses batches.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int]map[*Subscription]struct{}
	logger      *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[int]map[*Subscription]struct{}),
		logger:      logger,
	}
}

func (h *Hub) Subscribe(playerID int) *Subscription {
	sub := &Subscription{
		C:        make(chan []Event, subscriberBuffer),
		playerID: playerID,
	}

	h.mu.Lock()
	if h.subscribers[playerID] == nil {
		h.subscribers[playerID] = make(map[*Subscription]struct{})
	}
	h.subscribers[playerID][sub] = struct{}{}
	count := len(h.subscribers[playerID])
	h.mu.Unlock()

	h.logger.Debug("Event subscriber added", "player_id", playerID, "subscribers", count)
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	if subs, ok := h.subscribers[sub.playerID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.subscribers, sub.playerID)
		}
	}
	h.mu.Unlock()

	close(sub.C)
	h.logger.Debug("Event subscriber removed", "player_id", sub.playerID)
}

// Publish delivers an event batch to every subscriber of the player.
func (h *Hub) Publish(playerID int, events []Event) {
	if len(events) == 0 {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[playerID] {
		select {
		case sub.C <- events:
		default:
			h.logger.Warn("Dropping event batch for slow subscriber",
				"player_id", playerID,
				"events", len(events),
			)
		}
	}
}
