package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/linskybing/adoption-tracker/pkg/logger"
)

const (
	TypeFormCreated       = "form_created"
	TypeFormStatusChanged = "form_status_changed"
	TypeFormDeleted       = "form_deleted"
)

// subscriberBuffer bounds how far a slow websocket client may lag before
// events are dropped for it.
const subscriberBuffer = 64

type FormEvent struct {
	Type       string    `json:"type"`
	FormID     uint      `json:"form_id"`
	AnimalID   uint      `json:"animal_id"`
	FormStatus string    `json:"form_status,omitempty"`
	At         time.Time `json:"at"`
}

// Publisher is what the form services depend on.
type Publisher interface {
	Publish(evt FormEvent)
}

// Hub fans form events out to every live subscriber. Publishing never blocks.
type Hub struct {
	mu     sync.RWMutex
	subs   map[chan []byte]struct{}
	logger *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = logger.Discard()
	}
	return &Hub{
		subs:   make(map[chan []byte]struct{}),
		logger: log,
	}
}

// Subscribe registers a listener. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Publish(evt FormEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("marshal form event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
			h.logger.Warn("dropping form event for slow subscriber", "type", evt.Type, "form_id", evt.FormID)
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(FormEvent) {}
