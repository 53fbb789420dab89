package adaptor

import (
	"encoding/json"
	"net/http"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/dto/request"
	"real-estate-backend/internal/usecase"
	"real-estate-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// List handles GET /api/properties. The public listing is pinned to
// APPROVED regardless of any status parameter.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	query := request.ParsePropertyListQuery(r.URL.Query())

	page, err := h.service.List(r.Context(), query, false)
	if err != nil {
		respondServiceError(w, h.log, err, "list properties")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, page)
}

// AdminList handles GET /api/admin/properties. Defaults to all
// moderation statuses and honors an explicit status filter.
func (h *PropertyHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	query := request.ParsePropertyListQuery(r.URL.Query())

	page, err := h.service.List(r.Context(), query, true)
	if err != nil {
		respondServiceError(w, h.log, err, "list properties for review")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, page)
}

// Get handles GET /api/properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	viewer := identityFromContext(r)

	property, err := h.service.GetByID(r.Context(), propertyID, viewer)
	if err != nil {
		respondServiceError(w, h.log, err, "get property")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, property)
}

// Create handles POST /api/properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create property")
		return
	}

	utils.ResponseRaw(w, http.StatusCreated, property)
}

// ListMine handles GET /api/properties/me/properties
func (h *PropertyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	properties, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "list own properties")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, properties)
}

// UpdateMine handles PUT /api/properties/me/properties/{id}. Any
// accepted owner edit sends the property back to review.
func (h *PropertyHandler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PropertyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.UpdateMine(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update own property")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, property)
}

// AdminUpdate handles PUT /api/properties/{id}. The current moderation
// status is kept unless the payload supplies one.
func (h *PropertyHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	var req request.PropertyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.AdminUpdate(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update property")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, property)
}

// Approve handles PUT /api/properties/{id}/approve
func (h *PropertyHandler) Approve(w http.ResponseWriter, r *http.Request) {
	property, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "approve property")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, property)
}

// Reject handles PUT /api/properties/{id}/reject
func (h *PropertyHandler) Reject(w http.ResponseWriter, r *http.Request) {
	property, err := h.service.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "reject property")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, property)
}

// Delete handles DELETE /api/properties/{id} (admin only)
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete property")
		return
	}

	utils.ResponseNoContent(w)
}

func roleFromString(role string) entity.UserRole {
	switch role {
	case string(entity.RoleAdmin):
		return entity.RoleAdmin
	case string(entity.RoleAgent):
		return entity.RoleAgent
	default:
		return entity.RoleBuyer
	}
}
