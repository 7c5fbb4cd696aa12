package realtime

import (
	"context"
	"time"

	"foodpool-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	minReconnect = 10 * time.Second
	maxReconnect = time.Minute
	pingInterval = 90 * time.Second
)

// NewListener opens a dedicated LISTEN connection on Channel.
func NewListener(dsn string) (*pq.Listener, error) {
	log := logger.L().With(zap.String("component", "realtime"))
	l := pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnected:
			log.Info("listener connected")
		case pq.ListenerEventDisconnected:
			log.Warn("listener disconnected", zap.Error(err))
		case pq.ListenerEventReconnected:
			log.Info("listener reconnected")
		case pq.ListenerEventConnectionAttemptFailed:
			log.Warn("listener connection attempt failed", zap.Error(err))
		}
	})
	if err := l.Listen(Channel); err != nil {
		_ = l.Close()
		return nil, err
	}
	return l, nil
}

// Run pumps notifications from l into hub until ctx is done.
func Run(ctx context.Context, l *pq.Listener, hub *Hub) {
	pump(ctx, l.Notify, l.Ping, hub)
}

func pump(ctx context.Context, notify <-chan *pq.Notification, ping func() error, hub *Hub) {
	log := logger.FromCtx(ctx).With(zap.String("component", "realtime"))
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notify:
			if !ok {
				return
			}
			// pq sends nil after a reconnect; anything may have been missed.
			if n == nil {
				hub.Publish(Event{Resync: true})
				continue
			}
			e, err := ParseEvent(n.Extra)
			if err != nil {
				log.Warn("dropping notification", zap.Error(err))
				continue
			}
			hub.Publish(e)
		case <-ticker.C:
			if err := ping(); err != nil {
				log.Warn("listener ping failed", zap.Error(err))
			}
		}
	}
}
