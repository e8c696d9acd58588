package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/service"
)

type ReviewHandler struct {
	reviews service.ReviewService
}

func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var in service.CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}

	review, err := h.reviews.Create(r.Context(), actor, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListForEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := uuid.Parse(mux.Vars(r)["equipmentId"])
	if err != nil {
		writeError(w, domain.Validation("invalid equipment id"))
		return
	}

	reviews, err := h.reviews.ListForEquipment(r.Context(), equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	reviews, err := h.reviews.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, domain.Validation("invalid review id"))
		return
	}

	review, err := h.reviews.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, domain.Validation("invalid review id"))
		return
	}

	var patch service.UpdateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}

	review, err := h.reviews.Update(r.Context(), actor, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, domain.Validation("invalid review id"))
		return
	}

	if err := h.reviews.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
