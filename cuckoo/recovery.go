// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

// Recovery extracts a simple alternating cycle of exactly k edges from a
// trimmed residual. The trimmed residual is near-forest (a handful of
// cycles plus some trees): a union-find over nodes identifies every
// cycle-closing edge in near-linear time, and for each one the adjacency
// forest gives a unique candidate path whose length is checked against k.
//
// Nodes are tagged by side so side-0 node 3 and side-1 node 3 are distinct
// union-find elements; nodeKey does that tagging.
func nodeKey(side uint64, node uint64) uint64 {
	return (side << 32) | node
}

type unionFind struct {
	parent map[uint64]uint64
	rank   map[uint64]uint32
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[uint64]uint64), rank: make(map[uint64]uint32)}
}

func (u *unionFind) find(x uint64) uint64 {
	p, ok := u.parent[x]
	if !ok {
		u.parent[x] = x
		u.rank[x] = 0
		return x
	}
	if p == x {
		return x
	}
	root := u.find(p)
	u.parent[x] = root
	return root
}

// union merges the sets containing a and b, returning false if they were
// already the same set.
func (u *unionFind) union(a, b uint64) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}

type forestEdge struct {
	to  uint64
	idx uint64
}

// RecoverCycle searches the trimmed edge set alive for a simple alternating
// cycle of exactly k edges, returning the edge indices in the order
// Recovery produced them (not sorted) and true on success. Edges are
// inspected in ascending index order and the first closing edge whose
// forest path has the exact required length is returned; callers must not
// depend on a specific cycle when multiple valid cycles exist.
func RecoverCycle(p *Params, alive *Bitset, k uint32) ([]uint64, bool) {
	return recoverCycle(p.N, func(i, side uint64) uint64 { return Endpoint(p, i, side) }, alive, k)
}

// recoverCycle is the endpoint-function-parameterized core of RecoverCycle,
// split out so it can be exercised with a synthetic endpoint function in
// tests without depending on the PRF's output distribution.
func recoverCycle(n uint64, endpoint func(i, side uint64) uint64, alive *Bitset, k uint32) ([]uint64, bool) {
	if k < 2 {
		return nil, false
	}

	type edge struct {
		u, v uint64
		idx  uint64
	}
	var edges []edge
	for i := uint64(0); i < n; i++ {
		if !alive.Get(i) {
			continue
		}
		edges = append(edges, edge{
			u:   endpoint(i, 0),
			v:   endpoint(i, 1),
			idx: i,
		})
	}
	if uint64(len(edges)) < uint64(k) {
		return nil, false
	}

	uf := newUnionFind()
	adj := make(map[uint64][]forestEdge)

	for _, e := range edges {
		a := nodeKey(0, e.u)
		b := nodeKey(1, e.v)
		if uf.union(a, b) {
			adj[a] = append(adj[a], forestEdge{to: b, idx: e.idx})
			adj[b] = append(adj[b], forestEdge{to: a, idx: e.idx})
			continue
		}

		path, ok := forestPath(adj, a, b)
		if !ok {
			continue
		}
		if uint32(len(path))+1 == k {
			path = append(path, e.idx)
			return path, true
		}
	}

	return nil, false
}

// forestPath runs a breadth-first search over the adjacency forest from src
// to dst and returns the ordered list of forest-edge indices on the unique
// path between them.
func forestPath(adj map[uint64][]forestEdge, src, dst uint64) ([]uint64, bool) {
	type parentEntry struct {
		from    uint64
		edgeIdx uint64
		hasFrom bool
	}
	visited := map[uint64]parentEntry{src: {}}
	queue := []uint64{src}

	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		if x == dst {
			var path []uint64
			cur := x
			for {
				pe := visited[cur]
				if !pe.hasFrom {
					break
				}
				path = append(path, pe.edgeIdx)
				cur = pe.from
			}
			// reverse into src->dst order
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, true
		}
		for _, fe := range adj[x] {
			if _, seen := visited[fe.to]; seen {
				continue
			}
			visited[fe.to] = parentEntry{from: x, edgeIdx: fe.idx, hasFrom: true}
			queue = append(queue, fe.to)
		}
	}
	return nil, false
}
