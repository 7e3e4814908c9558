// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxItemLength is the maximum length of an item in characters, after trimming.
const MaxItemLength = 500

var (
	ErrEmpty         = errors.New("item is empty")
	ErrTooLong       = errors.New("item exceeds maximum length")
	ErrUnsafeContent = errors.New("item contains unsafe content")
)

// Case-insensitive substrings rejected outright. A heuristic, not a
// sanitizer: callers must still output-encode at render time.
var unsafeFragments = []string{
	"<script",
	"</script",
	"<iframe",
	"</iframe",
	"javascript:",
}

// Clean trims and validates a raw item, returning the cleaned value.
// Re-validating an already-clean value always succeeds with the same value.
func Clean(raw string) (string, error) {
	item := strings.TrimSpace(raw)
	if item == "" {
		return "", ErrEmpty
	}
	if utf8.RuneCountInString(item) > MaxItemLength {
		return "", ErrTooLong
	}

	lower := strings.ToLower(item)
	for _, frag := range unsafeFragments {
		if strings.Contains(lower, frag) {
			return "", ErrUnsafeContent
		}
	}

	return item, nil
}
