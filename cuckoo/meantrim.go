// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// MeanTrim is the bucketed alternative trimming frontend: it partitions
// alive edges by the low bucketBits of one side's endpoint, then counts
// exact per-node degree within each bucket. Because all edges incident to a
// given node share the same low bits of that node, bucket-local degree
// equals global degree, so this needs no persistent degree bitmap at all -
// only transient per-bucket maps. Use it when memcap is generous relative
// to LeanTrim's fixed (2+4) bitmap footprint.
type MeanTrim struct {
	p          *Params
	threads    int
	bucketBits uint

	alive *Bitset
}

// DefaultMaxRoundsMean is the caller budget used when a driver does not
// override it.
const DefaultMaxRoundsMean = 256

// NewMeanTrim allocates the alive bitset and configures bucketing.
// bucketBits must be small enough that 1<<bucketBits buckets is a
// reasonable transient allocation; the driver passes through the
// caller's Budgets.BucketBits unchanged.
func NewMeanTrim(p *Params, threads int, bucketBits uint) *MeanTrim {
	if threads < 1 {
		threads = 1
	}
	return &MeanTrim{
		p:          p,
		threads:    threads,
		bucketBits: bucketBits,
		alive:      NewBitsetAllOnes(p.N),
	}
}

func (mt *MeanTrim) bucketMask() uint64 {
	if mt.bucketBits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << mt.bucketBits) - 1
}

func (mt *MeanTrim) bucketCount() uint64 {
	if mt.bucketBits >= 32 {
		return uint64(1) << 32
	}
	return uint64(1) << mt.bucketBits
}

// trimSide partitions alive edges into buckets by side's endpoint low bits,
// counts exact degree per node within each bucket in parallel, and keeps
// edges whose endpoint has bucket-local (== global) degree >= 2.
func (mt *MeanTrim) trimSide(side uint64) uint64 {
	p := mt.p
	bucketMask := mt.bucketMask()
	bucketCount := mt.bucketCount()

	buckets := make([][]uint64, bucketCount)
	for i := uint64(0); i < p.N; i++ {
		if !mt.alive.Get(i) {
			continue
		}
		x := Endpoint(p, i, side)
		b := x & bucketMask
		buckets[b] = append(buckets[b], i)
	}

	newAlive := NewBitset(p.N)
	ranges := chunks(bucketCount, mt.threads)

	var wg sync.WaitGroup
	kept := make([]uint64, len(ranges))
	wg.Add(len(ranges))
	for ri, r := range ranges {
		start, end := r[0], r[1]
		go func(ri int) {
			defer wg.Done()
			var local uint64
			deg := make(map[uint64]uint32)
			for b := start; b < end; b++ {
				edges := buckets[b]
				if len(edges) == 0 {
					continue
				}
				for k := range deg {
					delete(deg, k)
				}
				for _, idx := range edges {
					x := Endpoint(p, idx, side)
					deg[x]++
				}
				for _, idx := range edges {
					x := Endpoint(p, idx, side)
					if deg[x] >= 2 {
						newAlive.AtomicSet(idx)
						local++
					}
				}
			}
			kept[ri] = local
		}(ri)
	}
	wg.Wait()

	mt.alive = newAlive

	var total uint64
	for _, k := range kept {
		total += k
	}
	return total
}

// Run alternates side-0 then side-1 bucketed trimming rounds with the same
// termination criterion as LeanTrim.Run. It returns the converged Bitset of
// alive edges and the number of rounds actually run.
func (mt *MeanTrim) Run(maxRounds int) (*Bitset, int) {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRoundsMean
	}
	alive := mt.p.N
	round := 0
	for ; round < maxRounds; round++ {
		kept0 := mt.trimSide(0)
		kept1 := mt.trimSide(1)

		logrus.WithFields(logrus.Fields{
			"round": round,
			"kept0": kept0,
			"kept1": kept1,
		}).Debug("mean trim round")

		if kept1 == alive {
			round++
			break
		}
		alive = kept1
		if alive == 0 {
			round++
			break
		}
	}
	return mt.alive, round
}
