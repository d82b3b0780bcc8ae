// file: internals/realtime/hub.go
package realtime

import (
	"log"
	"sync"
)

type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Change is one row-level mutation. Record carries the changed row (a DTO)
// so subscribers can patch local state without a full re-fetch.
type Change struct {
	Table  string `json:"table"`
	Action Action `json:"action"`
	Record any    `json:"record"`
}

type Subscriber struct {
	C      chan Change
	tables map[string]struct{}
}

// Hub fans row-level changes out to websocket subscribers. Publishing never
// blocks: a subscriber that cannot keep up loses events and must re-fetch.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// Subscribe registers interest in a set of tables. An empty set means all.
func (h *Hub) Subscribe(tables []string) *Subscriber {
	sub := &Subscriber{
		C:      make(chan Change, 64),
		tables: make(map[string]struct{}, len(tables)),
	}
	for _, t := range tables {
		sub.tables[t] = struct{}{}
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.C)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(table string, action Action, record any) {
	ch := Change{Table: table, Action: action, Record: record}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if len(sub.tables) > 0 {
			if _, ok := sub.tables[table]; !ok {
				continue
			}
		}
		select {
		case sub.C <- ch:
		default:
			log.Printf("[REALTIME] slow subscriber, dropping %s %s", action, table)
		}
	}
}
