// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hatpick/hatpick/middleware"
	"github.com/hatpick/hatpick/models"
	"github.com/hatpick/hatpick/namespace"
	"github.com/hatpick/hatpick/space"
	"github.com/hatpick/hatpick/store"
	"github.com/hatpick/hatpick/validate"
)

// SecretHeader carries the namespace secret on every authenticated route.
const SecretHeader = "X-Space-Secret"

type SpaceHandler struct {
	svc *space.Service
}

func NewSpaceHandler(svc *space.Service) *SpaceHandler {
	return &SpaceHandler{svc: svc}
}

// spaceKey extracts the namespace secret and derives the storage key.
// The secret itself never travels past this function.
func (h *SpaceHandler) spaceKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	secret := r.Header.Get(SecretHeader)
	if secret == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing_secret", SecretHeader+" header required")
		return "", false
	}
	return namespace.DeriveKey(secret), true
}

// ListItems handles GET /space/items
func (h *SpaceHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	key, ok := h.spaceKey(w, r)
	if !ok {
		return
	}

	items, err := h.svc.ListItems(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemsResponse{
		Items: items,
		Count: len(items),
	})
}

// AddItem handles POST /space/items
func (h *SpaceHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	key, ok := h.spaceKey(w, r)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	items, err := h.svc.AddItem(r.Context(), key, req.Item)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.ItemsResponse{
		Items: items,
		Count: len(items),
	})
}

// RemoveItem handles DELETE /space/items/{index}
func (h *SpaceHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	key, ok := h.spaceKey(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid_index", "index must be a non-negative integer")
		return
	}

	removed, items, err := h.svc.RemoveItem(r.Context(), key, index)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RemoveItemResponse{
		Removed: removed,
		Items:   items,
		Count:   len(items),
	})
}

// GetPicked handles GET /space/picked
func (h *SpaceHandler) GetPicked(w http.ResponseWriter, r *http.Request) {
	key, ok := h.spaceKey(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.GetPicked(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PickedResponse{Picked: rec})
}

// RecordPick handles POST /space/picked
func (h *SpaceHandler) RecordPick(w http.ResponseWriter, r *http.Request) {
	key, ok := h.spaceKey(w, r)
	if !ok {
		return
	}

	var req models.RecordPickRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	rec, err := h.svc.RecordPick(r.Context(), key, req.Item, req.Index)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, rec)
}

// writeServiceError maps service errors to HTTP statuses and stable codes.
// Storage internals are logged server-side and never sent to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validate.ErrEmpty):
		middleware.ErrorResponse(w, http.StatusBadRequest, "empty", "item is empty")
	case errors.Is(err, validate.ErrTooLong):
		middleware.ErrorResponse(w, http.StatusBadRequest, "too_long", "item exceeds 500 characters")
	case errors.Is(err, validate.ErrUnsafeContent):
		middleware.ErrorResponse(w, http.StatusBadRequest, "unsafe_content", "item contains unsafe content")
	case errors.Is(err, space.ErrInvalidIndex):
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid_index", "index must be a non-negative integer")
	case errors.Is(err, space.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "not_found", "no item at that index")
	case errors.Is(err, space.ErrDuplicateItem):
		middleware.ErrorResponse(w, http.StatusConflict, "duplicate_item", "item already exists in this space")
	case errors.Is(err, space.ErrCapacityExceeded):
		middleware.ErrorResponse(w, http.StatusConflict, "capacity_exceeded", "space is at capacity")
	case errors.Is(err, space.ErrMismatch):
		middleware.ErrorResponse(w, http.StatusConflict, "mismatch", "pick does not match the current items")
	case errors.Is(err, store.ErrStorage):
		slog.Error("storage failure", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage_error", "Storage unavailable, try again")
	default:
		slog.Error("unexpected service error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Internal error")
	}
}
