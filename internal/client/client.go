package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/callegarimattia/battleship/internal/dto"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans solve-loop snapshots out to every connected spectator
// websocket. A nil *Hub is valid and simply drops broadcasts, so the
// solver can run with no watchers attached at no extra cost.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub builds an empty spectator hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Upgrade promotes an incoming HTTP request to a websocket connection
// and registers it as a spectator, following the teacher's
// SubscribeToMatch dial pattern from the server side.
func (h *Hub) Upgrade(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// Broadcast pushes snap to every connected spectator, dropping any
// connection that fails to accept it.
func (h *Hub) Broadcast(snap dto.SpectatorSnapshot) {
	if h == nil {
		return
	}

	evt := dto.WSEvent{Type: "snapshot", Snapshot: snap}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(evt); err != nil {
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

// DialSpectator connects to a running Hub's websocket endpoint and
// streams SpectatorSnapshots until the connection closes, used by the
// spectator bot and the TUI viewer alike.
func DialSpectator(baseURL, path string) (<-chan dto.SpectatorSnapshot, error) {
	scheme := "ws"
	if strings.HasPrefix(baseURL, "https") {
		scheme = "wss"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("client: invalid base url: %w", err)
	}
	u.Scheme = scheme
	u.Path = path

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}

	out := make(chan dto.SpectatorSnapshot, 8)
	go func() {
		defer close(out)
		defer func() { _ = conn.Close() }()
		for {
			var evt dto.WSEvent
			if err := conn.ReadJSON(&evt); err != nil {
				return
			}
			out <- evt.Snapshot
		}
	}()

	return out, nil
}
