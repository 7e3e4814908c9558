// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package namespace derives storage keys from namespace secrets.

# Key Derivation

Keys are deterministic SHA-256 digests truncated to 16 hex characters:

	key := namespace.DeriveKey(secret)

The same secret always produces the same key, so any client holding the
secret lands in the same space. The derivation is one-way: the secret is
never stored and cannot be recovered from the key.

Empty secrets are permitted at this layer. The request layer rejects
requests without an X-Space-Secret header before derivation happens.

# Fragments

Pick records carry a short prefix of the key instead of the full key:

	frag := namespace.Fragment(key)  // first 8 characters

This identifies the space in logs and responses without handing out the
full storage key.
*/
package namespace
