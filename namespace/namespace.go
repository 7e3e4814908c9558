// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package namespace

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// KeyLength is the length of a derived namespace key in hex characters.
	KeyLength = 16

	// FragmentLength is the length of the key prefix embedded in pick records.
	FragmentLength = 8
)

// DeriveKey maps a namespace secret to its storage key.
// Deterministic and one-way: the same secret always yields the same key,
// and the key cannot be reversed to the secret.
func DeriveKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])[:KeyLength]
}

// Fragment returns the short key prefix used to tag pick records.
// It identifies the space without exposing the full storage key.
func Fragment(key string) string {
	if len(key) < FragmentLength {
		return key
	}
	return key[:FragmentLength]
}
