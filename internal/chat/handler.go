package chat

import (
	"encoding/json"
	"io"
	"net/http"

	"golang.org/x/net/websocket"

	"github.com/aramlabs/aram-assistant/pkg/logging"
)

// maxMessageBytes bounds the request body; chat messages are short.
const maxMessageBytes = 8 << 10

// Handler exposes the chat service over HTTP and websocket.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates the chat HTTP handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if service == nil {
		panic("chat: service cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	body := http.MaxBytesReader(w, r.Body, maxMessageBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply := h.service.Reply(r.Context(), req.Message)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reply)
}

// Summary handles GET /logs/summary behind admin auth.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("chat: summary failed", "error", err)
		http.Error(w, "failed to summarize logs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summary)
}

// ChatSocket serves a websocket that answers each text frame with a
// JSON reply, for widgets that keep the conversation open.
func (h *Handler) ChatSocket() http.Handler {
	return websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()
		for {
			var msg string
			if err := websocket.Message.Receive(ws, &msg); err != nil {
				if err != io.EOF {
					h.logger.Debug("chat: websocket closed", "error", err)
				}
				return
			}
			reply := h.service.Reply(ws.Request().Context(), msg)
			if err := websocket.JSON.Send(ws, reply); err != nil {
				h.logger.Debug("chat: websocket send failed", "error", err)
				return
			}
		}
	})
}
