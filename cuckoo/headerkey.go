// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import "hash/fnv"

// DeriveKeyFromHeader derives a Key128 from a header string exactly as the
// CLI contract specifies: k0 is FNV-1a of "<header>/k0", k1 is FNV-1a of
// "<header>/k1". This is the fallback used when no explicit --header hex
// key is supplied and the harness instead generates a random header per
// attempt.
func DeriveKeyFromHeader(header string) Key128 {
	return Key128{
		K0: fnv1a64(header + "/k0"),
		K1: fnv1a64(header + "/k1"),
	}
}

func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
