package wellness

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/wizcare/backend/internal/model/wellness"
	wellnessService "github.com/zhouzirui/wizcare/backend/internal/service/wellness"
	"github.com/zhouzirui/wizcare/backend/pkg/utils"
)

const maxBreathingCycles = 20

// Handler 健康小工具的HTTP处理器
type Handler struct {
	svc *wellnessService.Service
}

// New 创建健康小工具处理器
func New(svc *wellnessService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册健康小工具相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/wellness", h.handleCatalog)
	r.Get("/wellness/breathing/{exerciseID}", h.handleBreathingPlan)
	r.Get("/session/{sessionID}/moods", h.handleListMoods)
	r.Post("/session/{sessionID}/moods", h.handleCheckInMood)
	r.Get("/session/{sessionID}/journal", h.handleListJournal)
	r.Post("/session/{sessionID}/journal", h.handleSaveJournal)
}

// catalog 是前端初始化时拉取的静态内容。
type catalog struct {
	Moods              []wellness.Mood     `json:"moods"`
	BreathingExercises []breathingEntry    `json:"breathingExercises"`
	QuickResponses     []string            `json:"quickResponses"`
	Disclaimer         wellness.Disclaimer `json:"disclaimer"`
}

// breathingEntry 在练习定义之外附带单轮时长，供计时器显示进度。
type breathingEntry struct {
	wellness.BreathingExercise
	CycleSeconds int `json:"cycleSeconds"`
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	exercises := h.svc.BreathingExercises()
	entries := make([]breathingEntry, 0, len(exercises))
	for _, exercise := range exercises {
		entries = append(entries, breathingEntry{BreathingExercise: exercise, CycleSeconds: exercise.CycleSeconds()})
	}

	utils.RespondJSON(w, http.StatusOK, catalog{
		Moods:              h.svc.Moods(),
		BreathingExercises: entries,
		QuickResponses:     h.svc.QuickResponses(),
		Disclaimer:         h.svc.Disclaimer(),
	})
}

// handleBreathingPlan 返回计时器需要依次播放的阶段，cycles 默认为 1。
func (h *Handler) handleBreathingPlan(w http.ResponseWriter, r *http.Request) {
	cycles := 1
	if raw := r.URL.Query().Get("cycles"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxBreathingCycles {
			utils.RespondError(w, http.StatusBadRequest, "cycles must be between 1 and 20")
			return
		}
		cycles = n
	}

	phases, err := h.svc.BreathingPlan(chi.URLParam(r, "exerciseID"), cycles)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, phases)
}

func (h *Handler) handleCheckInMood(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mood string `json:"mood"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CheckInMood(r.Context(), chi.URLParam(r, "sessionID"), payload.Mood)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleListMoods(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListMoods(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleSaveJournal(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.SaveJournal(r.Context(), chi.URLParam(r, "sessionID"), payload.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleListJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListJournal(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, entries)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wellnessService.ErrSessionNotFound), errors.Is(err, wellnessService.ErrUnknownExercise):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, wellnessService.ErrUnknownMood), errors.Is(err, wellnessService.ErrEmptyJournal):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
