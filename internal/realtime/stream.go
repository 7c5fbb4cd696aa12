package realtime

import (
	"context"
	"net/http"
	"time"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	readLimit  = 512
)

// Fetcher loads the complete list pushed after every change.
type Fetcher func(ctx context.Context) (any, error)

type Message struct {
	Type   string `json:"type"`
	Data   any    `json:"data,omitempty"`
	Notice string `json:"notice,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Streamer struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewStreamer(hub *Hub, allowedOrigin string) *Streamer {
	return &Streamer{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Serve upgrades the connection, sends the current list and then re-sends it
// after every event for owner.
func (s *Streamer) Serve(w http.ResponseWriter, r *http.Request, owner uuid.UUID, side Side, fetch Fetcher) {
	ctx := r.Context()
	log := logger.FromCtx(ctx).With(
		zap.String("component", "realtime"),
		zap.String("side", string(side)),
	)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := s.hub.Subscribe(owner, side)
	defer s.hub.Unsubscribe(sub)
	log.Info("subscriber connected")

	done := make(chan struct{})
	go readPump(conn, done)

	push := func(notice string) error {
		msg := Message{Type: "orders", Notice: notice}
		data, err := fetch(ctx)
		if err != nil {
			log.Error("re-fetch failed", zap.Error(err))
			msg = Message{Type: "error", Error: "failed to load orders"}
		} else {
			msg.Data = data
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg)
	}

	if err := push(""); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			log.Info("subscriber disconnected")
			return
		case <-ctx.Done():
			return
		case e := <-sub.C:
			notice := ""
			if side == SideCustomer && e.BecameAccepted() {
				notice = AcceptedNotice
			}
			if err := push(notice); err != nil {
				log.Info("write failed", zap.Error(err))
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

// readPump drains client frames so control messages are processed.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
