package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
	"github.com/zhouzirui/wizcare/backend/internal/model/resource"
	"github.com/zhouzirui/wizcare/backend/pkg/utils"
)

// Handler 求助资源与压力计图例的HTTP处理器
type Handler struct {
	resources resource.Store
}

// New 创建资源处理器
func New(resources resource.Store) *Handler {
	return &Handler{
		resources: resources,
	}
}

// RegisterRoutes 注册资源相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/resources", h.handleListResources)
	r.Get("/stress/levels", h.handleStressLevels)
}

func (h *Handler) handleListResources(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, resource.Collect(h.resources))
}

func (h *Handler) handleStressLevels(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, stress.Meter())
}
