package adaptor

import (
	"net/http"

	"real-estate-backend/internal/usecase"
	"real-estate-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AgentHandler struct {
	service usecase.AgentService
	log     *zap.Logger
}

func NewAgentHandler(service usecase.AgentService, log *zap.Logger) *AgentHandler {
	return &AgentHandler{
		service: service,
		log:     log.With(zap.String("handler", "agent")),
	}
}

// List handles GET /api/admin/agents
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list agents")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, agents)
}

// Get handles GET /api/admin/agents/{id}
func (h *AgentHandler) Get(w http.ResponseWriter, r *http.Request) {
	agent, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "get agent")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, agent)
}
