package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"outreach-server/internal/automation"
	"outreach-server/internal/observability"

	"github.com/gorilla/websocket"
)

// upgrader is a shared WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: Add proper origin validation for production
		return true
	},
}

const (
	writeTimeout = 10 * time.Second

	// subscriberBuffer absorbs bursts of snapshots; a subscriber that falls
	// further behind than this starts losing intermediate snapshots, which
	// is fine because every delivery is a full snapshot.
	subscriberBuffer = 16
)

// progressHub fans orchestrator state snapshots out to websocket subscribers.
type progressHub struct {
	logger *observability.Logger

	mu          sync.Mutex
	subscribers map[chan automation.CampaignState]struct{}
}

func newProgressHub(logger *observability.Logger) *progressHub {
	return &progressHub{
		logger:      logger,
		subscribers: make(map[chan automation.CampaignState]struct{}),
	}
}

// publish delivers a snapshot to every subscriber without ever blocking the
// orchestrator. Slow subscribers skip intermediate snapshots.
func (h *progressHub) publish(state automation.CampaignState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub <- state:
		default:
			select {
			case <-sub:
			default:
			}
			select {
			case sub <- state:
			default:
			}
		}
	}
}

func (h *progressHub) subscribe() chan automation.CampaignState {
	sub := make(chan automation.CampaignState, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *progressHub) unsubscribe(sub chan automation.CampaignState) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
}

// serve pushes the current snapshot followed by every subsequent one until
// the client goes away or the request context ends.
func (h *progressHub) serve(ctx context.Context, conn *websocket.Conn, initial automation.CampaignState) {
	defer conn.Close()

	sub := h.subscribe()
	defer h.unsubscribe(sub)

	// Reads are discarded; they only surface client disconnects.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.write(conn, initial); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		case <-closed:
			return
		case state := <-sub:
			if err := h.write(conn, state); err != nil {
				return
			}
		}
	}
}

func (h *progressHub) write(conn *websocket.Conn, state automation.CampaignState) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(state)
}
