// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Hatpick API.

# Handler Type

SpaceHandler holds the service dependency and serves all space routes:

	h := handlers.NewSpaceHandler(svc)

# Routes

Every route requires the X-Space-Secret header. The secret is mapped to
a storage key by the namespace deriver before the service is touched; it
is never persisted or logged.

	GET    /space/items          → ListItems
	POST   /space/items          → AddItem
	DELETE /space/items/{index}  → RemoveItem
	GET    /space/picked         → GetPicked
	POST   /space/picked         → RecordPick

# Error Mapping

Service errors map to HTTP statuses with stable codes in the JSON body:

	400 empty | too_long | unsafe_content | invalid_index | invalid_json
	401 missing_secret
	404 not_found
	409 duplicate_item | capacity_exceeded | mismatch
	503 storage_error

Storage failures are logged with their cause server-side; clients only
see the storage_error code.
*/
package handlers
