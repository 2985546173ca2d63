// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package benchpool

import (
	"sync/atomic"
	"testing"
)

func TestRunCallsEveryIndexExactlyOnce(t *testing.T) {
	const n = 200
	var seen [n]int32

	p := New(8)
	p.Run(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d called %d times, want 1", i, c)
		}
	}
}

func TestRunNeverExceedsPoolSize(t *testing.T) {
	const size = 4
	var inFlight int32
	var maxSeen int32

	p := New(size)
	p.Run(64, func(i int) {
		cur := atomic.AddInt32(&inFlight, 1)
		for {
			prev := atomic.LoadInt32(&maxSeen)
			if cur <= prev || atomic.CompareAndSwapInt32(&maxSeen, prev, cur) {
				break
			}
		}
		atomic.AddInt32(&inFlight, -1)
	})

	if maxSeen > size {
		t.Fatalf("observed %d concurrent attempts, want <= %d", maxSeen, size)
	}
}

func TestNewClampsNonPositiveSize(t *testing.T) {
	p := New(0)
	if cap(p.tokens) != 1 {
		t.Fatalf("cap(tokens) = %d, want 1 for size < 1", cap(p.tokens))
	}
}
