// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hatpick/hatpick/handlers"
	"github.com/hatpick/hatpick/models"
	"github.com/hatpick/hatpick/namespace"
	"github.com/hatpick/hatpick/space"
	"github.com/hatpick/hatpick/testutil"
)

func newHandler(t *testing.T) (*handlers.SpaceHandler, *space.Service) {
	t.Helper()
	svc := testutil.NewService(t)
	return handlers.NewSpaceHandler(svc), svc
}

func secretHeaders(secret string) map[string]string {
	return map[string]string{handlers.SecretHeader: secret}
}

func TestListItemsHandler(t *testing.T) {
	h, svc := newHandler(t)
	testutil.SeedItems(t, svc, namespace.DeriveKey("lunch"), []string{"Pizza", "Sushi"})

	req := testutil.MakeRequest("GET", "/space/items", nil, secretHeaders("lunch"))
	w := httptest.NewRecorder()
	h.ListItems(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ItemsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 2 || len(resp.Items) != 2 {
		t.Errorf("Expected 2 items, got %+v", resp)
	}
	if resp.Items[0] != "Pizza" || resp.Items[1] != "Sushi" {
		t.Errorf("Expected [Pizza Sushi], got %v", resp.Items)
	}
}

func TestListItemsEmptySpaceHandler(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.MakeRequest("GET", "/space/items", nil, secretHeaders("never-seen-before"))
	w := httptest.NewRecorder()
	h.ListItems(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ItemsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 0 {
		t.Errorf("Fresh space must list empty, got %+v", resp)
	}
	if resp.Items == nil {
		t.Error("Items must serialize as [], not null")
	}
}

func TestMissingSecret(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.MakeRequest("GET", "/space/items", nil, nil)
	w := httptest.NewRecorder()
	h.ListItems(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Code != "missing_secret" {
		t.Errorf("Expected code missing_secret, got %q", resp.Code)
	}
}

func TestAddItemHandler(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.MakeRequest("POST", "/space/items",
		models.AddItemRequest{Item: "Tacos"}, secretHeaders("lunch"))
	w := httptest.NewRecorder()
	h.AddItem(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.ItemsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 1 || resp.Items[0] != "Tacos" {
		t.Errorf("AddItem response = %+v", resp)
	}
}

func TestAddItemInvalidJSON(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest("POST", "/space/items", strings.NewReader("{not json"))
	req.Header.Set(handlers.SecretHeader, "lunch")
	w := httptest.NewRecorder()
	h.AddItem(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Code != "invalid_json" {
		t.Errorf("Expected code invalid_json, got %q", resp.Code)
	}
}

func TestAddItemErrorCodes(t *testing.T) {
	h, svc := newHandler(t)
	testutil.SeedItems(t, svc, namespace.DeriveKey("lunch"), []string{"Pizza"})

	tests := []struct {
		name       string
		item       string
		wantStatus int
		wantCode   string
	}{
		{"empty item", "   ", http.StatusBadRequest, "empty"},
		{"too long", strings.Repeat("x", 501), http.StatusBadRequest, "too_long"},
		{"script injection", "<script>alert(1)</script>", http.StatusBadRequest, "unsafe_content"},
		{"duplicate", "Pizza", http.StatusConflict, "duplicate_item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/space/items",
				models.AddItemRequest{Item: tt.item}, secretHeaders("lunch"))
			w := httptest.NewRecorder()
			h.AddItem(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Code != tt.wantCode {
				t.Errorf("Expected code %q, got %q", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestRemoveItemHandler(t *testing.T) {
	h, svc := newHandler(t)
	testutil.SeedItems(t, svc, namespace.DeriveKey("lunch"), []string{"A", "B", "C"})

	req := testutil.MakeRequest("DELETE", "/space/items/1", nil, secretHeaders("lunch"))
	req.SetPathValue("index", "1")
	w := httptest.NewRecorder()
	h.RemoveItem(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RemoveItemResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Removed != "B" {
		t.Errorf("Expected removed B, got %q", resp.Removed)
	}
	if resp.Count != 2 || resp.Items[0] != "A" || resp.Items[1] != "C" {
		t.Errorf("Expected [A C], got %+v", resp)
	}
}

func TestRemoveItemBadIndex(t *testing.T) {
	h, svc := newHandler(t)
	testutil.SeedItems(t, svc, namespace.DeriveKey("lunch"), []string{"A"})

	tests := []struct {
		name       string
		index      string
		wantStatus int
		wantCode   string
	}{
		{"not a number", "abc", http.StatusBadRequest, "invalid_index"},
		{"negative", "-1", http.StatusBadRequest, "invalid_index"},
		{"out of range", "5", http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("DELETE", "/space/items/"+tt.index, nil, secretHeaders("lunch"))
			req.SetPathValue("index", tt.index)
			w := httptest.NewRecorder()
			h.RemoveItem(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Code != tt.wantCode {
				t.Errorf("Expected code %q, got %q", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestRecordPickHandler(t *testing.T) {
	h, svc := newHandler(t)
	testutil.SeedItems(t, svc, namespace.DeriveKey("lunch"), []string{"Pizza", "Sushi"})

	req := testutil.MakeRequest("POST", "/space/picked",
		models.RecordPickRequest{Item: "Sushi", Index: 1}, secretHeaders("lunch"))
	w := httptest.NewRecorder()
	h.RecordPick(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var rec models.PickRecord
	testutil.AssertJSON(t, w, &rec)
	if rec.Item != "Sushi" || rec.Index != 1 {
		t.Errorf("RecordPick response = %+v", rec)
	}
	if rec.Space != namespace.Fragment(namespace.DeriveKey("lunch")) {
		t.Errorf("Expected space fragment, got %q", rec.Space)
	}
	if rec.PickedAt.IsZero() {
		t.Error("PickedAt must be set")
	}
}

func TestRecordPickMismatchHandler(t *testing.T) {
	h, svc := newHandler(t)
	testutil.SeedItems(t, svc, namespace.DeriveKey("lunch"), []string{"Pizza"})

	req := testutil.MakeRequest("POST", "/space/picked",
		models.RecordPickRequest{Item: "Sushi", Index: 0}, secretHeaders("lunch"))
	w := httptest.NewRecorder()
	h.RecordPick(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Code != "mismatch" {
		t.Errorf("Expected code mismatch, got %q", resp.Code)
	}
}

func TestGetPickedHandler(t *testing.T) {
	h, svc := newHandler(t)
	key := namespace.DeriveKey("lunch")
	testutil.SeedItems(t, svc, key, []string{"Pizza"})

	// Before any pick: null
	req := testutil.MakeRequest("GET", "/space/picked", nil, secretHeaders("lunch"))
	w := httptest.NewRecorder()
	h.GetPicked(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.PickedResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Picked != nil {
		t.Errorf("Expected null pick, got %+v", resp.Picked)
	}

	if _, err := svc.RecordPick(t.Context(), key, "Pizza", 0); err != nil {
		t.Fatalf("RecordPick() error = %v", err)
	}

	req = testutil.MakeRequest("GET", "/space/picked", nil, secretHeaders("lunch"))
	w = httptest.NewRecorder()
	h.GetPicked(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	resp = models.PickedResponse{}
	testutil.AssertJSON(t, w, &resp)
	if resp.Picked == nil || resp.Picked.Item != "Pizza" {
		t.Errorf("Expected Pizza pick, got %+v", resp.Picked)
	}
}

// Different secrets never see each other's items.
func TestNamespaceIsolation(t *testing.T) {
	h, svc := newHandler(t)
	testutil.SeedItems(t, svc, namespace.DeriveKey("team-alpha"), []string{"Secret Plan"})

	req := testutil.MakeRequest("GET", "/space/items", nil, secretHeaders("team-beta"))
	w := httptest.NewRecorder()
	h.ListItems(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.ItemsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 0 {
		t.Errorf("team-beta must not see team-alpha's items, got %+v", resp)
	}
}
