// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

// Verify is independent of the solver: it recomputes endpoints from scratch
// and walks the alternating cycle itself, using no trimming state and no
// solver invariant. It is the sole gate for reporting success.
//
// It checks, in order, short-circuiting on the first failure:
//  1. len(proof) == k
//  2. every index is in [0, N) and all are distinct
//  3. endpoints recomputed via Endpoint
//  4. every participating node has degree exactly 2 on its side
//  5. starting from proof[0], the walk that alternates sides returns to the
//     starting edge after exactly k steps, never earlier, with a distinct
//     "other" incident edge at every step.
//
// It returns (true, "") on success, or (false, reason) on the first check
// that fails.
func Verify(p *Params, proof []uint64, k uint32) (bool, string) {
	return verify(p.N, func(i, side uint64) uint64 { return Endpoint(p, i, side) }, proof, k)
}

// verify is the endpoint-function-parameterized core of Verify, split out
// so it can be exercised against a handcrafted graph in tests without
// depending on the PRF's output distribution.
func verify(n64 uint64, endpoint func(i, side uint64) uint64, proof []uint64, k uint32) (bool, string) {
	if uint32(len(proof)) != k {
		return false, "wrong proof length"
	}

	seen := make(map[uint64]bool, len(proof))
	for _, idx := range proof {
		if idx >= n64 {
			return false, "edge index out of range"
		}
		if seen[idx] {
			return false, "duplicate edge index"
		}
		seen[idx] = true
	}

	n := int(k)
	nodesU := make([]uint64, n)
	nodesV := make([]uint64, n)
	for i, idx := range proof {
		nodesU[i] = endpoint(idx, 0)
		nodesV[i] = endpoint(idx, 1)
	}

	adjU := make(map[uint64][]int, n)
	adjV := make(map[uint64][]int, n)
	for i := 0; i < n; i++ {
		adjU[nodesU[i]] = append(adjU[nodesU[i]], i)
		adjV[nodesV[i]] = append(adjV[nodesV[i]], i)
	}

	for _, positions := range adjU {
		if len(positions) != 2 {
			return false, "degree check fails"
		}
	}
	for _, positions := range adjV {
		if len(positions) != 2 {
			return false, "degree check fails"
		}
	}

	visited := make([]bool, n)
	visited[0] = true
	cur := 0
	side := uint64(0) // side 0 (U) is followed first, matching proof[0]'s U endpoint

	for step := 0; step < n; step++ {
		var positions []int
		var node uint64
		if side == 0 {
			node = nodesU[cur]
			positions = adjU[node]
		} else {
			node = nodesV[cur]
			positions = adjV[node]
		}

		next := -1
		for _, pos := range positions {
			if pos != cur {
				next = pos
				break
			}
		}
		if next == -1 {
			return false, "does not return to start"
		}

		last := step == n-1
		if last {
			if next != 0 {
				return false, "does not return to start"
			}
		} else {
			if next == 0 || visited[next] {
				return false, "does not return to start"
			}
			visited[next] = true
		}

		cur = next
		side ^= 1
	}

	return true, ""
}
