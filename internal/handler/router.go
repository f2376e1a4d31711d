package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/wizcare/backend/internal/handler/chat"
	"github.com/zhouzirui/wizcare/backend/internal/handler/realtime"
	resourceHandler "github.com/zhouzirui/wizcare/backend/internal/handler/resource"
	"github.com/zhouzirui/wizcare/backend/internal/handler/stream"
	wellnessHandler "github.com/zhouzirui/wizcare/backend/internal/handler/wellness"
	"github.com/zhouzirui/wizcare/backend/internal/middleware"
	"github.com/zhouzirui/wizcare/backend/internal/model/resource"
	chatService "github.com/zhouzirui/wizcare/backend/internal/service/chat"
	"github.com/zhouzirui/wizcare/backend/internal/service/reply"
	wellnessService "github.com/zhouzirui/wizcare/backend/internal/service/wellness"
	"github.com/zhouzirui/wizcare/backend/pkg/utils"
)

// Dependencies are the services the router exposes.
type Dependencies struct {
	Chat      *chatService.Service
	Replies   *reply.Service
	Wellness  *wellnessService.Service
	Resources resource.Store
	// Provider names the configured remote backend; it is reported only when remote generation is enabled.
	Provider string
	Logger   *zap.Logger
}

// StatusResponse is returned by /api/status.
type StatusResponse struct {
	Status   string `json:"status"`
	Mode     string `json:"mode"`
	Provider string `json:"provider,omitempty"`
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	r.Route("/api", func(api chi.Router) {
		api.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, status(deps))
		})

		chat.New(deps.Chat, deps.Resources).RegisterRoutes(api)
		stream.New(deps.Chat, deps.Resources).RegisterRoutes(api)
		realtime.NewWebSocketHandler(deps.Chat, deps.Resources).RegisterRoutes(api)
		resourceHandler.New(deps.Resources).RegisterRoutes(api)
		wellnessHandler.New(deps.Wellness).RegisterRoutes(api)
	})

	return r
}

func status(deps Dependencies) StatusResponse {
	if deps.Replies == nil || !deps.Replies.Enabled() {
		return StatusResponse{Status: "ok", Mode: string(reply.SourceFallback)}
	}
	return StatusResponse{Status: "ok", Mode: string(reply.SourceRemote), Provider: deps.Provider}
}
