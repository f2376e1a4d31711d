package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	chatHandler "github.com/zhouzirui/wizcare/backend/internal/handler/chat"
	"github.com/zhouzirui/wizcare/backend/internal/model/resource"
	chatService "github.com/zhouzirui/wizcare/backend/internal/service/chat"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	writeWait  = 10 * time.Second
)

// WebSocketHandler 处理实时对话连接
type WebSocketHandler struct {
	chatSvc   *chatService.Service
	resources resource.Store
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewWebSocketHandler 创建 WebSocket 处理器
func NewWebSocketHandler(chatSvc *chatService.Service, resources resource.Store) *WebSocketHandler {
	return &WebSocketHandler{
		chatSvc:   chatSvc,
		resources: resources,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: zap.L().Named("websocket"),
	}
}

// RegisterRoutes 注册 WebSocket 路由
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

// SubmitMessage 是 "submit" 帧携带的数据。
type SubmitMessage struct {
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if !h.chatSvc.Exists(r.Context(), sessionID) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	logger := h.logger.With(zap.String("session", sessionID))
	logger.Debug("connection opened")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go h.pingLoop(ctx, conn)

	h.send(conn, outgoingMessage{Type: "connected", SessionID: sessionID})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Info("read failed", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if msg.SessionID != "" && msg.SessionID != sessionID {
			h.sendError(conn, "session mismatch")
			continue
		}

		h.handleMessage(ctx, conn, sessionID, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, conn *websocket.Conn, sessionID string, msg *inboundMessage) {
	switch msg.Type {
	case "submit":
		h.handleSubmit(ctx, conn, sessionID, msg.Data)
	case "reset":
		if err := h.chatSvc.Reset(ctx, sessionID); err != nil {
			_, message := chatHandler.StatusFor(err)
			h.sendError(conn, message)
			return
		}
		h.send(conn, outgoingMessage{Type: "reset", SessionID: sessionID})
	default:
		h.sendError(conn, "unsupported message type: "+msg.Type)
	}
}

// handleSubmit 在读循环中同步执行，单个连接上的提交天然串行。
func (h *WebSocketHandler) handleSubmit(ctx context.Context, conn *websocket.Conn, sessionID string, raw json.RawMessage) {
	var submit SubmitMessage
	if err := json.Unmarshal(raw, &submit); err != nil {
		h.sendError(conn, "invalid submit payload")
		return
	}

	_, err := h.chatSvc.Submit(ctx, sessionID, submit.Text, func(ev chatService.Event) {
		ev = chatHandler.Decorate(ev, h.resources)
		h.send(conn, outgoingMessage{
			Type:      string(ev.Type),
			SessionID: ev.SessionID,
			Data:      ev.Data,
			Timestamp: ev.Timestamp,
		})
	})
	if err != nil {
		_, message := chatHandler.StatusFor(err)
		h.sendError(conn, message)
	}
}

func (h *WebSocketHandler) send(conn *websocket.Conn, msg outgoingMessage) {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().UnixMilli()
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Debug("write failed", zap.String("type", msg.Type), zap.Error(err))
	}
}

func (h *WebSocketHandler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, outgoingMessage{Type: "error", Data: map[string]string{"message": message}})
}

// pingLoop 使用 WriteControl，可与读循环中的写操作并发。
func (h *WebSocketHandler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
