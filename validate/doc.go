// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate enforces item well-formedness.

	item, err := validate.Clean(raw)

Clean trims surrounding whitespace and rejects empty values (ErrEmpty),
values longer than 500 characters (ErrTooLong), and values containing
script/iframe tags or javascript: URIs (ErrUnsafeContent).

The content check is a case-insensitive substring denylist. It is a
defense-in-depth heuristic only and is NOT a substitute for output
encoding when items are rendered.
*/
package validate
