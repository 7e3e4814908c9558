// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Database type constants
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// Request types

type AddItemRequest struct {
	Item string `json:"item"`
}

type RecordPickRequest struct {
	Item  string `json:"item"`
	Index int    `json:"index"`
}

// Response types

type ItemsResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

type RemoveItemResponse struct {
	Removed string   `json:"removed"`
	Items   []string `json:"items"`
	Count   int      `json:"count"`
}

type PickedResponse struct {
	Picked *PickRecord `json:"picked"` // null when no pick is recorded
}

// Domain types

// Space is the persisted record for one namespace key.
type Space struct {
	Key            string      `json:"-"` // never expose the full storage key
	Items          []string    `json:"items"`
	LastPicked     *PickRecord `json:"last_picked,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	LastModifiedAt time.Time   `json:"last_modified_at"`
}

// PickRecord is a point-in-time snapshot of one selection event. The index
// is only guaranteed valid at the moment it was recorded; the service clears
// the record whenever a removal could have shifted it.
type PickRecord struct {
	Item     string    `json:"item"`
	Index    int       `json:"index"`
	PickedAt time.Time `json:"picked_at"`
	Space    string    `json:"space"` // first 8 chars of the namespace key
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}
