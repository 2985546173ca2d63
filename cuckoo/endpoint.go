// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

// Endpoint maps edge index i and side (0 or 1) through the PRF to a node
// index in [0, N). It holds no state of its own; it is called on the order
// of N times per trimming pass and dominates cache-miss cost, so
// implementers should keep it this small and branch-free.
func Endpoint(p *Params, i uint64, side uint64) uint64 {
	nonce := (i << 1) | side
	return prf(p.Variant, p.Key, nonce) & p.NodeMask
}
