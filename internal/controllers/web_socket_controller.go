package controllers

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// upgrader configures the WebSocket connection for police dashboards.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AlertEvent is one live update pushed to connected police watchers:
// either a fresh location ping or an SOS alert.
type AlertEvent struct {
	Type      string    `json:"type"` // "location" or "sos"
	TouristID string    `json:"touristId"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertHub fans AlertEvents out to every connected watcher.
type AlertHub struct {
	watchers  map[*websocket.Conn]bool
	broadcast chan AlertEvent
	mu        sync.Mutex
}

// NewAlertHub creates a hub and starts its broadcast loop.
func NewAlertHub() *AlertHub {
	hub := &AlertHub{
		watchers:  make(map[*websocket.Conn]bool),
		broadcast: make(chan AlertEvent, 100),
	}
	go hub.run()
	return hub
}

func (h *AlertHub) run() {
	for event := range h.broadcast {
		h.mu.Lock()
		for conn := range h.watchers {
			if err := conn.WriteJSON(event); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("Watcher closed during broadcast, removing.")
				} else {
					logrus.WithError(err).Warn("Failed to send alert event to watcher.")
				}
				delete(h.watchers, conn)
				conn.Close()
			}
		}
		h.mu.Unlock()
	}
}

// Publish queues an event for broadcast. Events are dropped rather than
// blocking the request that produced them.
func (h *AlertHub) Publish(event AlertEvent) {
	select {
	case h.broadcast <- event:
	default:
		logrus.Warn("Alert broadcast channel full, dropping event.")
	}
}

func (h *AlertHub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.watchers[conn] = true
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("Police watcher registered with AlertHub.")
}

func (h *AlertHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.watchers, conn)
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("Police watcher unregistered from AlertHub.")
}

// HandlePoliceWebSocket upgrades the connection and streams alert
// events until the watcher disconnects. Watchers only listen; anything
// they send is ignored.
func (h *AlertHub) HandlePoliceWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection.")
		return
	}
	defer conn.Close()

	h.register(conn)
	defer h.unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).Warn("Error reading from police watcher WebSocket.")
			}
			return
		}
	}
}
