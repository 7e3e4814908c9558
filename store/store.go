// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hatpick/hatpick/models"
)

// ErrStorage wraps all persistence-layer failures. Callers check it with
// errors.Is; the underlying driver error stays out of API responses.
var ErrStorage = errors.New("storage error")

// maxCASRetries bounds the optimistic-write retry loop. Each retry round
// lets one concurrent writer through, so this many simultaneous mutations
// of a single space can all land before the loop gives up.
const maxCASRetries = 32

const timeLayout = time.RFC3339Nano

// Store persists Space records keyed by namespace key.
//
// Mutations use optimistic concurrency: every row carries a version
// counter, and writes are compare-and-swap updates that only land if the
// version is unchanged since the read. The same statements run on both
// supported backends, unlike SELECT ... FOR UPDATE which sqlite lacks.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the Space for key, lazily creating an empty one on first
// access. Creation is an atomic insert-or-ignore, so two concurrent first
// accesses converge on a single row.
func (s *Store) Get(ctx context.Context, key string) (*models.Space, error) {
	sp, _, err := s.load(ctx, key)
	return sp, err
}

// Mutate applies fn to the current Space value and persists the result.
// The read and write form a compare-and-swap unit: if another writer
// commits in between, the loop re-reads and re-applies fn against the
// fresh value, so concurrent mutations of one key serialize without lost
// updates. An error from fn aborts without writing and is returned as-is.
//
// fn may be invoked more than once and must not keep side effects across
// invocations other than through the Space it is given.
func (s *Store) Mutate(ctx context.Context, key string, fn func(*models.Space) error) (*models.Space, error) {
	for attempt := 0; attempt < maxCASRetries; attempt++ {
		sp, version, err := s.load(ctx, key)
		if err != nil {
			return nil, err
		}

		if err := fn(sp); err != nil {
			return nil, err
		}

		itemsJSON, err := json.Marshal(sp.Items)
		if err != nil {
			return nil, fmt.Errorf("%w: encode items: %v", ErrStorage, err)
		}

		var pickedJSON any
		if sp.LastPicked != nil {
			b, err := json.Marshal(sp.LastPicked)
			if err != nil {
				return nil, fmt.Errorf("%w: encode pick record: %v", ErrStorage, err)
			}
			pickedJSON = string(b)
		}

		now := time.Now().UTC()
		res, err := s.db.ExecContext(ctx, `
			UPDATE space
			SET items = $1, last_picked = $2, item_count = $3, version = $4, last_modified_at = $5
			WHERE ns_key = $6 AND version = $7
		`, string(itemsJSON), pickedJSON, len(sp.Items), version+1, now.Format(timeLayout), key, version)
		if err != nil {
			return nil, fmt.Errorf("%w: update space: %v", ErrStorage, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("%w: rows affected: %v", ErrStorage, err)
		}
		if n == 1 {
			sp.LastModifiedAt = now
			return sp, nil
		}
		// Lost the race to another writer; reload and retry.
	}

	return nil, fmt.Errorf("%w: write contention on space not resolved after %d attempts", ErrStorage, maxCASRetries)
}

// load ensures the row exists, then reads it along with its CAS version.
func (s *Store) load(ctx context.Context, key string) (*models.Space, int64, error) {
	now := time.Now().UTC().Format(timeLayout)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO space (ns_key, items, last_picked, item_count, version, created_at, last_modified_at)
		VALUES ($1, '[]', NULL, 0, 1, $2, $3)
		ON CONFLICT (ns_key) DO NOTHING
	`, key, now, now)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: init space: %v", ErrStorage, err)
	}

	var (
		itemsJSON  string
		pickedJSON sql.NullString
		createdAt  string
		modifiedAt string
		version    int64
	)
	err = s.db.QueryRowContext(ctx, `
		SELECT items, last_picked, created_at, last_modified_at, version
		FROM space
		WHERE ns_key = $1
	`, key).Scan(&itemsJSON, &pickedJSON, &createdAt, &modifiedAt, &version)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read space: %v", ErrStorage, err)
	}

	sp := &models.Space{Key: key, Items: []string{}}

	if err := json.Unmarshal([]byte(itemsJSON), &sp.Items); err != nil {
		return nil, 0, fmt.Errorf("%w: decode items: %v", ErrStorage, err)
	}
	if sp.Items == nil {
		sp.Items = []string{}
	}

	if pickedJSON.Valid {
		var rec models.PickRecord
		if err := json.Unmarshal([]byte(pickedJSON.String), &rec); err != nil {
			return nil, 0, fmt.Errorf("%w: decode pick record: %v", ErrStorage, err)
		}
		sp.LastPicked = &rec
	}

	if sp.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, 0, fmt.Errorf("%w: parse created_at: %v", ErrStorage, err)
	}
	if sp.LastModifiedAt, err = time.Parse(timeLayout, modifiedAt); err != nil {
		return nil, 0, fmt.Errorf("%w: parse last_modified_at: %v", ErrStorage, err)
	}

	return sp, version, nil
}
