package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/wizcare/backend/internal/model/resource"
	chatService "github.com/zhouzirui/wizcare/backend/internal/service/chat"
	"github.com/zhouzirui/wizcare/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc   *chatService.Service
	resources resource.Store
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, resources resource.Store) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		resources: resources,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}", h.handleGetSession)
	r.Get("/session/{sessionID}/messages", h.handleListMessages)
	r.Post("/session/{sessionID}/messages", h.handleSubmitMessage)
	r.Post("/session/{sessionID}/reset", h.handleReset)
}

// submitResponse 是一次提交的结果；危机等级时附带求助资源。
type submitResponse struct {
	chatService.Exchange
	Resources *resource.Bundle `json:"resources,omitempty"`
}

// handleCreateSession 创建匿名会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		RespondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		RespondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, session)
}

// handleListMessages 返回完整对话记录
func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatSvc.LoadTranscript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		RespondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, messages)
}

// handleSubmitMessage 提交一条用户消息并同步返回回复
func (h *Handler) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}

	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exchange, err := h.chatSvc.Submit(r.Context(), chi.URLParam(r, "sessionID"), payload.Text, nil)
	if err != nil {
		RespondServiceError(w, err)
		return
	}

	resp := submitResponse{Exchange: exchange}
	if exchange.Emergency {
		bundle := resource.Collect(h.resources)
		resp.Resources = &bundle
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

// handleReset 清空模型上下文，对话记录保留
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.Reset(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		RespondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// StatusFor 将聊天服务错误映射为 HTTP 状态码和可返回给客户端的消息。
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		return http.StatusNotFound, chatService.ErrSessionNotFound.Error()
	case errors.Is(err, chatService.ErrSessionBusy):
		return http.StatusConflict, chatService.ErrSessionBusy.Error()
	case errors.Is(err, chatService.ErrEmptyMessage):
		return http.StatusBadRequest, chatService.ErrEmptyMessage.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// RespondServiceError 以 JSON 错误体写出 err。
func RespondServiceError(w http.ResponseWriter, err error) {
	status, message := StatusFor(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("chat request failed", zap.Error(err))
	}
	utils.RespondError(w, status, message)
}

// CriticalPayload 是发给客户端的危机事件数据。
type CriticalPayload struct {
	Stress    any             `json:"stress"`
	Resources resource.Bundle `json:"resources"`
}

// Decorate 为危机事件附加求助资源，其他事件原样返回。
func Decorate(ev chatService.Event, resources resource.Store) chatService.Event {
	if ev.Type == chatService.EventCritical {
		ev.Data = CriticalPayload{Stress: ev.Data, Resources: resource.Collect(resources)}
	}
	return ev
}
