package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var in service.CreateEquipmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}

	equipment, err := h.equipment.Create(r.Context(), actor, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, equipment)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EquipmentFilter{
		Type:               q.Get("type"),
		Location:           q.Get("location"),
		AvailabilityStatus: domain.AvailabilityStatus(q.Get("availability_status")),
		Search:             q.Get("search"),
	}
	if filter.AvailabilityStatus != "" && !filter.AvailabilityStatus.Valid() {
		writeError(w, domain.Validation("invalid availability_status filter: %s", filter.AvailabilityStatus))
		return
	}

	items, err := h.equipment.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	items, err := h.equipment.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrSlug := mux.Vars(r)["idOrSlug"]

	equipment, err := h.equipment.Get(r.Context(), idOrSlug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, domain.Validation("invalid equipment id"))
		return
	}

	var patch service.UpdateEquipmentInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}

	equipment, err := h.equipment.Update(r.Context(), actor, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, domain.Validation("invalid equipment id"))
		return
	}

	if err := h.equipment.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
