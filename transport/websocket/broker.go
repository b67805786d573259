package websocket

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

const subscriberBuffer = 16

// Broker fans saved snapshots out to the connections watching each session.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan entity.Snapshot]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan entity.Snapshot]struct{}),
	}
}

func (that *Broker) Subscribe(sessionID string) chan entity.Snapshot {
	ch := make(chan entity.Snapshot, subscriberBuffer)

	that.mu.Lock()
	if that.subs[sessionID] == nil {
		that.subs[sessionID] = make(map[chan entity.Snapshot]struct{})
	}
	that.subs[sessionID][ch] = struct{}{}
	that.mu.Unlock()

	return ch
}

func (that *Broker) Unsubscribe(sessionID string, ch chan entity.Snapshot) {
	that.mu.Lock()
	delete(that.subs[sessionID], ch)
	if len(that.subs[sessionID]) == 0 {
		delete(that.subs, sessionID)
	}
	that.mu.Unlock()
}

// Publish - never blocks; a subscriber with a full buffer misses the update.
func (that *Broker) Publish(snapshot entity.Snapshot) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for ch := range that.subs[snapshot.SessionID] {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
