// Package support serves the scripted support-chat widget over WebSocket.
package support

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nkozyrev/gameshop/internal/bot"
	"github.com/nkozyrev/gameshop/internal/handler"
	"github.com/nkozyrev/gameshop/internal/telemetry"
)

const (
	senderBot  = "bot"
	senderUser = "user"

	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// inbound is a frame from the browser: either a topic selection or free text.
type inbound struct {
	Type    string `json:"type"` // "topic" or "message"
	TopicID int    `json:"topic_id,omitempty"`
	Text    string `json:"text,omitempty"`
}

// outbound is a bot message pushed to the browser.
type outbound struct {
	Type   string    `json:"type"`
	From   string    `json:"from"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// ChatHandler upgrades support-chat connections and drives the scripted bot.
// Each connection gets its own conversation; nothing persists once the
// socket closes.
type ChatHandler struct {
	script   *bot.Script
	logger   *slog.Logger
	metrics  *telemetry.BusinessMetrics
	upgrader websocket.Upgrader
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(script *bot.Script, logger *slog.Logger, metrics *telemetry.BusinessMetrics) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{
		script:  script,
		logger:  logger,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			// The widget runs on the storefront origin; session state is
			// anonymous, so cross-origin reads expose nothing sensitive.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type topicsResponse struct {
	Greeting string      `json:"greeting"`
	Topics   []bot.Topic `json:"topics"`
}

// Topics handles GET /api/support/topics.
func (h *ChatHandler) Topics(w http.ResponseWriter, r *http.Request) {
	handler.JSON(w, http.StatusOK, topicsResponse{
		Greeting: h.script.Greeting(),
		Topics:   h.script.Topics(),
	})
}

// Serve handles GET /ws/support.
func (h *ChatHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("chat upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.metrics.RecordChatConnection()
	h.logger.Debug("chat connected", "remote", r.RemoteAddr)

	// Keep idle widgets alive through proxies.
	stopPing := make(chan struct{})
	defer close(stopPing)
	go h.pingLoop(conn, stopPing)

	conv := bot.NewConversation(h.script)
	if err := h.send(conn, h.script.Greeting()); err != nil {
		return
	}

	for {
		var in inbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("chat read error", "error", err)
			}
			return
		}
		h.metrics.RecordChatMessage(senderUser)

		var reply string
		switch in.Type {
		case "topic":
			selected, ok := conv.SelectTopic(in.TopicID)
			if !ok {
				reply = "Please choose one of the listed topics."
			} else {
				reply = selected
			}
		case "message":
			reply = conv.UserMessage(in.Text)
		default:
			reply = "Please choose one of the listed topics."
		}

		if err := h.send(conn, reply); err != nil {
			return
		}
	}
}

func (h *ChatHandler) send(conn *websocket.Conn, text string) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err := conn.WriteJSON(outbound{
		Type:   "message",
		From:   senderBot,
		Text:   text,
		SentAt: time.Now(),
	})
	if err != nil {
		h.logger.Debug("chat write error", "error", err)
		return err
	}
	h.metrics.RecordChatMessage(senderBot)
	return nil
}

func (h *ChatHandler) pingLoop(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-stop:
			return
		}
	}
}
