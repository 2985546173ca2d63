// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// LeanTrim is the bitset-based leaf-trimming engine: it repeatedly removes
// edges incident to degree-1 nodes until no such edge remains. Its
// persistent footprint is two edge-alive buffers plus four per-side degree
// bitmaps, independent of how many edges actually survive.
type LeanTrim struct {
	p       *Params
	threads int

	alive    *Bitset
	newAlive *Bitset
	seen     [2]*Bitset
	nonleaf  [2]*Bitset
}

// DefaultMaxRoundsLean is the caller budget used when a driver does not
// override it.
const DefaultMaxRoundsLean = 256

// NewLeanTrim allocates the persistent bitsets for one attempt. It does not
// check memcap; callers enforce that via MemoryBytesPerEdge before
// allocating (see SolverDriver).
func NewLeanTrim(p *Params, threads int) *LeanTrim {
	if threads < 1 {
		threads = 1
	}
	n := p.N
	return &LeanTrim{
		p:        p,
		threads:  threads,
		alive:    NewBitsetAllOnes(n),
		newAlive: NewBitset(n),
		seen:     [2]*Bitset{NewBitset(n), NewBitset(n)},
		nonleaf:  [2]*Bitset{NewBitset(n), NewBitset(n)},
	}
}

// MemoryBytesPerEdge is the exact persistent footprint per edge for N edges:
// two edge-alive buffers plus four node-degree bitmaps, each ceil(N/64)
// 64-bit words, divided by N. This only converges to the 0.75 bytes/edge
// asymptote once N is a multiple of 64 (edge_bits >= 6); below that the word
// ceiling dominates and the true per-edge figure is far higher, so the
// caller-facing check must use this, not the asymptotic constant.
func MemoryBytesPerEdge(n uint64) float64 {
	words := wordsFor(n)
	const buffers = 6 // 2 alive buffers + 4 degree bitmaps
	return float64(buffers*words*8) / float64(n)
}

// chunks partitions [0, n) into up to t contiguous ranges.
func chunks(n uint64, t int) [][2]uint64 {
	if t < 1 {
		t = 1
	}
	chunk := (n + uint64(t) - 1) / uint64(t)
	if chunk == 0 {
		chunk = 1
	}
	var out [][2]uint64
	for start := uint64(0); start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		out = append(out, [2]uint64{start, end})
	}
	return out
}

// trimSide runs one leaf-elimination pass for a single side, keeping edges
// whose endpoint on that side has alive degree >= 2.
func (lt *LeanTrim) trimSide(side uint64) uint64 {
	p := lt.p
	seen := lt.seen[side]
	nonleaf := lt.nonleaf[side]
	seen.ClearAll()
	nonleaf.ClearAll()
	lt.newAlive.ClearAll()

	ranges := chunks(p.N, lt.threads)

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		start, end := r[0], r[1]
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				if !lt.alive.Get(i) {
					continue
				}
				x := Endpoint(p, i, side)
				mask := uint64(1) << (x & 63)
				old := seen.AtomicOrWord(x, mask)
				if old&mask != 0 {
					nonleaf.AtomicOrWord(x, mask)
				}
			}
		}()
	}
	wg.Wait()

	kept := make([]uint64, len(ranges))
	wg.Add(len(ranges))
	for ri, r := range ranges {
		start, end := r[0], r[1]
		go func(ri int) {
			defer wg.Done()
			var local uint64
			for i := start; i < end; i++ {
				if !lt.alive.Get(i) {
					continue
				}
				x := Endpoint(p, i, side)
				if nonleaf.Get(x) {
					lt.newAlive.AtomicSet(i)
					local++
				}
			}
			kept[ri] = local
		}(ri)
	}
	wg.Wait()

	lt.alive, lt.newAlive = lt.newAlive, lt.alive

	var total uint64
	for _, k := range kept {
		total += k
	}
	return total
}

// trimBoth runs one combined both-sides pass: an edge survives only if both
// its endpoints are nonleaf, checked in a single pass rather than two
// alternating ones. Used as a final tightening step once alternating
// side-trims stop making progress.
func (lt *LeanTrim) trimBoth() uint64 {
	p := lt.p
	for side := uint64(0); side < 2; side++ {
		lt.seen[side].ClearAll()
		lt.nonleaf[side].ClearAll()
	}
	lt.newAlive.ClearAll()

	ranges := chunks(p.N, lt.threads)

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		start, end := r[0], r[1]
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				if !lt.alive.Get(i) {
					continue
				}
				for side := uint64(0); side < 2; side++ {
					x := Endpoint(p, i, side)
					mask := uint64(1) << (x & 63)
					old := lt.seen[side].AtomicOrWord(x, mask)
					if old&mask != 0 {
						lt.nonleaf[side].AtomicOrWord(x, mask)
					}
				}
			}
		}()
	}
	wg.Wait()

	kept := make([]uint64, len(ranges))
	wg.Add(len(ranges))
	for ri, r := range ranges {
		start, end := r[0], r[1]
		go func(ri int) {
			defer wg.Done()
			var local uint64
			for i := start; i < end; i++ {
				if !lt.alive.Get(i) {
					continue
				}
				u := Endpoint(p, i, 0)
				v := Endpoint(p, i, 1)
				if lt.nonleaf[0].Get(u) && lt.nonleaf[1].Get(v) {
					lt.newAlive.AtomicSet(i)
					local++
				}
			}
			kept[ri] = local
		}(ri)
	}
	wg.Wait()

	lt.alive, lt.newAlive = lt.newAlive, lt.alive

	var total uint64
	for _, k := range kept {
		total += k
	}
	return total
}

// Run alternates side-0 then side-1 trimming rounds until the alive count
// reaches zero, maxRounds is exhausted, or a round leaves the count
// unchanged and one combined both-sides tightening pass run after that
// round also leaves it unchanged. It returns the
// converged Bitset of alive edges and the number of rounds actually run.
func (lt *LeanTrim) Run(maxRounds int) (*Bitset, int) {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRoundsLean
	}
	alive := lt.p.N
	round := 0
	for ; round < maxRounds; round++ {
		kept0 := lt.trimSide(0)
		kept1 := lt.trimSide(1)

		logrus.WithFields(logrus.Fields{
			"round": round,
			"kept0": kept0,
			"kept1": kept1,
		}).Debug("lean trim round")

		if kept1 == alive {
			kept2 := lt.trimBoth()
			if kept2 == alive {
				round++
				break
			}
			alive = kept2
		} else {
			alive = kept1
		}

		if alive == 0 {
			round++
			break
		}
	}
	return lt.alive, round
}
