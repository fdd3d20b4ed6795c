package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"liyu1981.xyz/plant-care-service/pkg/common"
)

const (
	liveWriteWait  = 5 * time.Second
	liveSendBuffer = 16
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// LiveHub fans newly persisted readings out to websocket subscribers. Every
// subscriber has its own writer goroutine; Broadcast never touches a socket.
type LiveHub struct {
	mu      sync.Mutex
	clients map[*subscriber]struct{}
}

func NewLiveHub() *LiveHub {
	return &LiveHub{clients: make(map[*subscriber]struct{})}
}

func (h *LiveHub) add(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[sub] = struct{}{}
}

// drop must be called with h.mu held. Closing send stops the writer, which
// closes the connection.
func (h *LiveHub) drop(sub *subscriber) {
	if _, ok := h.clients[sub]; ok {
		delete(h.clients, sub)
		close(sub.send)
	}
}

func (h *LiveHub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(sub)
}

func (h *LiveHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *LiveHub) writeLoop(sub *subscriber) {
	defer sub.conn.Close()

	for msg := range sub.send {
		if err := sub.conn.SetWriteDeadline(time.Now().Add(liveWriteWait)); err != nil {
			h.remove(sub)
			return
		}
		if err := sub.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.remove(sub)
			return
		}
	}

	_ = sub.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	_ = sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *LiveHub) Serve(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, liveSendBuffer)}
	h.add(sub)
	defer h.remove(sub)

	go h.writeLoop(sub)

	// subscribers only listen; reading drains control frames and notices close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast queues v for every subscriber. A subscriber whose queue is full
// has stopped reading and is dropped.
func (h *LiveHub) Broadcast(v any) {
	msg, err := json.Marshal(v)
	if err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Cannot encode live update", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.clients {
		select {
		case sub.send <- msg:
		default:
			common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("Dropping slow live subscriber",
				zap.String("remote_addr", sub.conn.RemoteAddr().String()))
			h.drop(sub)
		}
	}
}
