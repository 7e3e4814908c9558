// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists Space records with per-key atomic mutation.

# Lazy Creation

Get creates an empty Space on first access:

	sp, err := st.Get(ctx, key)

Creation is INSERT ... ON CONFLICT DO NOTHING followed by a read, so two
concurrent first accesses to a never-seen key converge on one row rather
than racing a check-then-insert.

# Atomic Mutation

Mutate is the sole write path:

	sp, err := st.Mutate(ctx, key, func(sp *models.Space) error {
		sp.Items = append(sp.Items, item)
		return nil
	})

Each mutation reads the row with its version counter, applies fn, and
writes back with a compare-and-swap on the version. If a concurrent
writer got there first the update affects zero rows and the loop retries
against fresh state. Concurrent mutations of the same key therefore
serialize into some valid order (not necessarily arrival order) with no
lost updates; mutations of different keys never contend.

An error returned by fn aborts the mutation without writing anything.
Because retries re-invoke fn on re-read state, fn must be a pure function
of the Space it receives.

# Errors

All persistence failures wrap ErrStorage:

	if errors.Is(err, store.ErrStorage) { ... }

Driver-specific details stay inside the wrapped message and are never
surfaced through the service API.
*/
package store
