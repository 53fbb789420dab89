package adaptor

import (
	"encoding/json"
	"net/http"

	"real-estate-backend/internal/dto/request"
	"real-estate-backend/internal/usecase"
	"real-estate-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LookupHandler exposes the admin CRUD over the filter vocabulary.
type LookupHandler struct {
	service usecase.LookupService
	log     *zap.Logger
}

func NewLookupHandler(service usecase.LookupService, log *zap.Logger) *LookupHandler {
	return &LookupHandler{
		service: service,
		log:     log.With(zap.String("handler", "lookup")),
	}
}

// CreatePropertyType handles POST /api/property-types
func (h *LookupHandler) CreatePropertyType(w http.ResponseWriter, r *http.Request) {
	var req request.PropertyTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	propertyType, err := h.service.CreatePropertyType(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create property type")
		return
	}

	utils.ResponseRaw(w, http.StatusCreated, propertyType)
}

// ListPropertyTypes handles GET /api/property-types
func (h *LookupHandler) ListPropertyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListPropertyTypes(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list property types")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, types)
}

// UpdatePropertyType handles PUT /api/property-types/{id}
func (h *LookupHandler) UpdatePropertyType(w http.ResponseWriter, r *http.Request) {
	var req request.PropertyTypeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	propertyType, err := h.service.UpdatePropertyType(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update property type")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, propertyType)
}

// DeletePropertyType handles DELETE /api/property-types/{id}
func (h *LookupHandler) DeletePropertyType(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePropertyType(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete property type")
		return
	}

	utils.ResponseNoContent(w)
}

// CreateCharacteristic handles POST /api/property-characteristics
func (h *LookupHandler) CreateCharacteristic(w http.ResponseWriter, r *http.Request) {
	var req request.CharacteristicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	characteristic, err := h.service.CreateCharacteristic(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create characteristic")
		return
	}

	utils.ResponseRaw(w, http.StatusCreated, characteristic)
}

// ListCharacteristics handles GET /api/property-characteristics
func (h *LookupHandler) ListCharacteristics(w http.ResponseWriter, r *http.Request) {
	characteristics, err := h.service.ListCharacteristics(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list characteristics")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, characteristics)
}

// UpdateCharacteristic handles PUT /api/property-characteristics/{id}
func (h *LookupHandler) UpdateCharacteristic(w http.ResponseWriter, r *http.Request) {
	var req request.CharacteristicUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	characteristic, err := h.service.UpdateCharacteristic(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update characteristic")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, characteristic)
}

// DeleteCharacteristic handles DELETE /api/property-characteristics/{id}
func (h *LookupHandler) DeleteCharacteristic(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCharacteristic(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete characteristic")
		return
	}

	utils.ResponseNoContent(w)
}

// AddOption handles POST /api/property-characteristics/{id}/options
func (h *LookupHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req request.CharacteristicOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	characteristic, err := h.service.AddCharacteristicOption(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "add characteristic option")
		return
	}

	utils.ResponseRaw(w, http.StatusCreated, characteristic)
}

// UpdateOption handles PUT /api/property-characteristics/options/{id}
func (h *LookupHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	var req request.CharacteristicOptionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateCharacteristicOption(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		respondServiceError(w, h.log, err, "update characteristic option")
		return
	}

	utils.ResponseSuccess(w, "Option updated successfully", nil)
}

// DeleteOption handles DELETE /api/property-characteristics/options/{id}
func (h *LookupHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCharacteristicOption(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete characteristic option")
		return
	}

	utils.ResponseNoContent(w)
}
