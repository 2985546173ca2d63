// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package fingerprint

import "testing"

func TestProofDeterministic(t *testing.T) {
	edges := []uint64{1, 2, 3, 4, 5}
	if Proof(edges) != Proof(edges) {
		t.Fatal("Proof is not deterministic for the same input")
	}
}

func TestProofOrderSensitive(t *testing.T) {
	a := []uint64{1, 2, 3}
	b := []uint64{3, 2, 1}
	if Proof(a) == Proof(b) {
		t.Fatal("Proof should differ for reordered edges")
	}
}

func TestProofHexLength(t *testing.T) {
	s := ProofHex([]uint64{42})
	if len(s) != 64 {
		t.Fatalf("ProofHex length = %d, want 64 (32-byte blake2b digest)", len(s))
	}
}

func TestHeaderShortIDDeterministic(t *testing.T) {
	var header [16]byte
	for i := range header {
		header[i] = byte(i)
	}
	a := HeaderShortID(header)
	b := HeaderShortID(header)
	if a != b {
		t.Fatal("HeaderShortID is not deterministic for the same header")
	}
}

func TestHeaderShortIDHexLength(t *testing.T) {
	var header [16]byte
	s := HeaderShortIDHex(header)
	if len(s) != 12 {
		t.Fatalf("HeaderShortIDHex length = %d, want 12 (6-byte id)", len(s))
	}
}

func TestHeaderShortIDDiffersAcrossHeaders(t *testing.T) {
	var h1, h2 [16]byte
	h2[0] = 1
	if HeaderShortID(h1) == HeaderShortID(h2) {
		t.Fatal("expected different headers to (almost certainly) produce different short ids")
	}
}
