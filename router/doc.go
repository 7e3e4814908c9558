// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Hatpick API.

# Route Registration

NewRouter returns the fully wired handler chain:

	handler := router.NewRouter(svc, cfg)

The space routes sit inside CORS and per-IP rate-limiting middleware;
authenticated routes additionally get request logging.

# Endpoints

Health (unauthenticated):

	GET /health

Space operations (require the X-Space-Secret header):

	GET    /space/items         - List items
	POST   /space/items         - Add item
	DELETE /space/items/{index} - Remove item by index
	GET    /space/picked        - Last recorded pick (null when absent)
	POST   /space/picked        - Record a pick

Root:

	GET / - API banner
*/
package router
