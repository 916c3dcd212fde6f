package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/adoption-tracker/internal/events"
	"github.com/linskybing/adoption-tracker/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum number of events to buffer before forcing a send.
	batchSize = 50

	// Maximum time to wait before sending buffered events.
	flushFrequency = 100 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// StreamForms godoc
// @Summary Stream form lifecycle events
// @Description Upgrades to a websocket and pushes JSON arrays of form events (form_created, form_status_changed, form_deleted).
// @Tags forms
// @Security BearerAuth
// @Param token query string false "JWT for browsers that cannot set headers"
// @Router /ws/forms [get]
func (h *EventsHandler) StreamForms(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	feed, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go writeBatches(conn, feed)

	// Clients never send anything meaningful; reading only drives pongs and
	// detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("form event websocket closed", "error", err)
			}
			return
		}
	}
}

// writeBatches owns every write to conn. It exits when feed is closed or a
// write fails.
func writeBatches(conn *websocket.Conn, feed <-chan []byte) {
	defer func() { _ = conn.Close() }()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	flushTicker := time.NewTicker(flushFrequency)
	defer flushTicker.Stop()

	var buffer []json.RawMessage

	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		batch, err := json.Marshal(buffer)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, batch); err != nil {
			return err
		}
		buffer = buffer[:0]
		return nil
	}

	for {
		select {
		case msg, ok := <-feed:
			if !ok {
				_ = flush()
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			buffer = append(buffer, json.RawMessage(msg))
			if len(buffer) >= batchSize {
				if err := flush(); err != nil {
					return
				}
			}

		case <-flushTicker.C:
			if err := flush(); err != nil {
				return
			}

		case <-pingTicker.C:
			if err := flush(); err != nil {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
