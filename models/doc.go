// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddItemRequest: item
  - RecordPickRequest: item, index

# Response Types

Types for JSON responses:

  - ItemsResponse: items, count
  - RemoveItemResponse: removed, items, count
  - PickedResponse: picked (null when absent)
  - ErrorResponse: error, code, message

ErrorResponse.Code is a stable machine-checkable identifier (for example
"duplicate_item" or "storage_error") so clients can branch on error kind
without parsing human-readable text.

# Domain Types

Internal data structures:

  - Space: items plus last pick state for one namespace key
  - PickRecord: point-in-time snapshot of one selection event

# Constants

Database backends:

	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
*/
package models
