// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package space orchestrates validated mutations against the space store.

The Service owns all five operations on a space:

  - ListItems: current items
  - AddItem: validate, reject duplicates and overflow, append
  - RemoveItem: remove by index, invalidate a stale pick
  - RecordPick: verify the client's item/index pair, snapshot the pick
  - GetPicked: last recorded pick or nil

Every mutation runs inside a single store.Mutate call, so its checks and
its write are one atomic unit per namespace key. The last-picked record
is a point-in-time snapshot: RemoveItem clears it whenever the removal
happens at or below the recorded index, since the shift makes the stored
index unreliable.

Random selection is deliberately not here. Clients choose the index and
the service only validates and records it, which keeps randomness and
its seeding outside the persistence-critical core.
*/
package space
