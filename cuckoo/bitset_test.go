// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import (
	"sync"
	"testing"
)

func TestBitsetAllOnesTailMasked(t *testing.T) {
	b := NewBitsetAllOnes(70)
	for i := uint64(0); i < 70; i++ {
		if !b.Get(i) {
			t.Fatalf("bit %d should be set", i)
		}
	}
	if b.PopCount() != 70 {
		t.Fatalf("popcount = %d, want 70", b.PopCount())
	}
}

func TestBitsetSetClearGet(t *testing.T) {
	b := NewBitset(128)
	b.Set(5)
	b.Set(127)
	if !b.Get(5) || !b.Get(127) {
		t.Fatal("expected bits 5 and 127 set")
	}
	b.Clear(5)
	if b.Get(5) {
		t.Fatal("expected bit 5 cleared")
	}
	if b.PopCount() != 1 {
		t.Fatalf("popcount = %d, want 1", b.PopCount())
	}
}

func TestBitsetAtomicOrConcurrentDistinctBits(t *testing.T) {
	b := NewBitset(64)
	var wg sync.WaitGroup
	for i := uint64(0); i < 64; i++ {
		wg.Add(1)
		go func(i uint64) {
			defer wg.Done()
			b.AtomicSet(i)
		}(i)
	}
	wg.Wait()
	if b.PopCount() != 64 {
		t.Fatalf("popcount = %d, want 64 (lost update under concurrent word-OR)", b.PopCount())
	}
}

func TestBitsetClearAll(t *testing.T) {
	b := NewBitsetAllOnes(100)
	b.ClearAll()
	if b.PopCount() != 0 {
		t.Fatalf("popcount = %d, want 0", b.PopCount())
	}
}
