// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package space

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hatpick/hatpick/models"
	"github.com/hatpick/hatpick/namespace"
	"github.com/hatpick/hatpick/store"
	"github.com/hatpick/hatpick/validate"
)

// MaxItems is the maximum number of items in one space.
const MaxItems = 1000

var (
	ErrDuplicateItem    = errors.New("item already exists in space")
	ErrCapacityExceeded = errors.New("space is at capacity")
	ErrInvalidIndex     = errors.New("index must be a non-negative integer")
	ErrNotFound         = errors.New("no item at index")
	ErrMismatch         = errors.New("pick does not match current items")
)

// Service is the only component that mutates spaces. It validates input
// before touching the store and enforces the cross-field invariants
// between the item list and the last-picked record.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// ListItems returns the current items of the space.
func (s *Service) ListItems(ctx context.Context, key string) ([]string, error) {
	sp, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return sp.Items, nil
}

// AddItem validates and appends an item, returning the updated list.
// Fails with ErrDuplicateItem if the cleaned value is already present and
// ErrCapacityExceeded if the space holds MaxItems. Both checks run inside
// the atomic mutate, so concurrent adds cannot slip past them.
func (s *Service) AddItem(ctx context.Context, key, raw string) ([]string, error) {
	item, err := validate.Clean(raw)
	if err != nil {
		return nil, err
	}

	sp, err := s.store.Mutate(ctx, key, func(sp *models.Space) error {
		for _, existing := range sp.Items {
			if existing == item {
				return ErrDuplicateItem
			}
		}
		if len(sp.Items) >= MaxItems {
			return ErrCapacityExceeded
		}
		sp.Items = append(sp.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item added", "space", namespace.Fragment(key), "count", len(sp.Items))
	return sp.Items, nil
}

// RemoveItem removes the item at index, shifting later items down by one.
// Any removal at or before the recorded pick index clears the pick: its
// exact index identity can no longer be guaranteed after the shift.
func (s *Service) RemoveItem(ctx context.Context, key string, index int) (string, []string, error) {
	if index < 0 {
		return "", nil, ErrInvalidIndex
	}

	var removed string
	sp, err := s.store.Mutate(ctx, key, func(sp *models.Space) error {
		if index >= len(sp.Items) {
			return ErrNotFound
		}
		removed = sp.Items[index]
		sp.Items = append(sp.Items[:index], sp.Items[index+1:]...)
		if sp.LastPicked != nil && sp.LastPicked.Index >= index {
			sp.LastPicked = nil
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	slog.Info("item removed", "space", namespace.Fragment(key), "index", index, "count", len(sp.Items))
	return removed, sp.Items, nil
}

// RecordPick stores a selection made by the client. The supplied
// item/index pair is checked against the current list inside the atomic
// mutate, so a pick made against stale client state fails with
// ErrMismatch instead of recording a lie.
func (s *Service) RecordPick(ctx context.Context, key, rawItem string, index int) (*models.PickRecord, error) {
	if index < 0 {
		return nil, ErrInvalidIndex
	}

	item, err := validate.Clean(rawItem)
	if err != nil {
		return nil, err
	}

	var rec *models.PickRecord
	_, err = s.store.Mutate(ctx, key, func(sp *models.Space) error {
		if index >= len(sp.Items) || sp.Items[index] != item {
			return ErrMismatch
		}
		rec = &models.PickRecord{
			Item:     item,
			Index:    index,
			PickedAt: time.Now().UTC(),
			Space:    namespace.Fragment(key),
		}
		sp.LastPicked = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("pick recorded", "space", namespace.Fragment(key), "index", index)
	return rec, nil
}

// GetPicked returns the last recorded pick, or nil if none is recorded
// or the last one was invalidated by a removal.
func (s *Service) GetPicked(ctx context.Context, key string) (*models.PickRecord, error) {
	sp, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return sp.LastPicked, nil
}
