package stream

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	chatHandler "github.com/zhouzirui/wizcare/backend/internal/handler/chat"
	"github.com/zhouzirui/wizcare/backend/internal/model/resource"
	chatService "github.com/zhouzirui/wizcare/backend/internal/service/chat"
	"github.com/zhouzirui/wizcare/backend/pkg/utils"
)

// Handler runs a submission and streams its events via Server-Sent Events.
type Handler struct {
	chatSvc   *chatService.Service
	resources resource.Store
	logger    *zap.Logger
}

// New creates a new stream handler
func New(chatSvc *chatService.Service, resources resource.Store) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		resources: resources,
		logger:    zap.L().Named("stream"),
	}
}

// RegisterRoutes mounts the SSE endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream/{sessionID}", h.handleStream)
}

// StreamError is the payload of the terminal error event.
type StreamError struct {
	Message string `json:"message"`
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	message := strings.TrimSpace(r.URL.Query().Get("message"))
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// Headers go out with the first event so errors raised before it stay plain JSON.
	started := false
	notify := func(ev chatService.Event) {
		if !started {
			utils.SetupSSEHeaders(w)
			w.WriteHeader(http.StatusOK)
			started = true
		}
		ev = chatHandler.Decorate(ev, h.resources)
		if err := utils.SendSSEEvent(w, flusher, string(ev.Type), ev); err != nil {
			h.logger.Debug("sse write failed", zap.String("session", sessionID), zap.Error(err))
		}
	}

	exchange, err := h.chatSvc.Submit(r.Context(), sessionID, message, notify)
	if err != nil {
		if !started {
			chatHandler.RespondServiceError(w, err)
			return
		}
		_, msg := chatHandler.StatusFor(err)
		_ = utils.SendSSEEvent(w, flusher, "error", StreamError{Message: msg})
		return
	}

	_ = utils.SendSSEEvent(w, flusher, "done", exchange)
}
