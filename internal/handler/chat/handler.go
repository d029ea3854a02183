package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/amansman77/buddy/internal/model/chat"
	chatService "github.com/amansman77/buddy/internal/service/chat"
	"github.com/amansman77/buddy/internal/service/llm"
	"github.com/amansman77/buddy/pkg/utils"
)

// User-facing failure messages.
const (
	msgMalformedBody      = "잘못된 요청 형식입니다."
	msgServiceUnavailable = "AI 서비스에 일시적인 문제가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgInternalError      = "메시지 처리 중 오류가 발생했습니다."
	msgNotConfigured      = "LLM API keys not configured"
)

// Handler exposes the chat pipeline over HTTP.
type Handler struct {
	svc *chatService.Service
}

// New creates the chat handler.
func New(svc *chatService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the chat endpoints. The service-specific
// routes preset the service tag before delegating to the same pipeline.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat(""))
	r.Post("/chat/dandani", h.handleChat("dandani"))
	r.Post("/chat/timefold", h.handleChat("timefold"))
	r.Post("/chat/tteut", h.handleChat("tteut"))
}

func (h *Handler) handleChat(presetService string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, msgMalformedBody)
			return
		}
		if presetService != "" {
			req.Service = presetService
		}

		result, err := h.svc.Chat(r.Context(), &req)
		if err != nil {
			respondChatError(w, err)
			return
		}

		utils.RespondSuccess(w, result)
	}
}

// respondChatError owns the unified error-to-status mapping.
func respondChatError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, llm.ErrNotConfigured):
		utils.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
	case llm.IsProviderFailure(err):
		utils.RespondError(w, http.StatusServiceUnavailable, msgServiceUnavailable)
	default:
		utils.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
