// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Package cuckoo implements the solver and verifier for the Cuckoo/Cuckatoo
// family of memory-hard proof-of-work puzzles: a keyed PRF derives a
// pseudorandom bipartite edge set, leaf trimming reduces it to a near-forest
// residual, and cycle recovery extracts a simple alternating cycle of an
// exact target length. The verifier is independent of the solver and is the
// sole gate for reporting success.
package cuckoo

import (
	"encoding/hex"

	"github.com/cuckoo-pow/solver/cuckooerr"
)

// Variant selects the PRF's SipHash compression/finalization round counts.
type Variant int

const (
	// SipVariant12 is the weakened SipHash-1-2 PRF, used to benchmark
	// against the canonical variant.
	SipVariant12 Variant = iota
	// SipVariant24 is the canonical SipHash-2-4 PRF.
	SipVariant24
)

func (v Variant) String() string {
	if v == SipVariant12 {
		return "SIP-1-2"
	}
	return "SIP-2-4"
}

// ParseVariant maps the CLI spelling ("sip12"/"sip24") to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "sip12":
		return SipVariant12, nil
	case "sip24":
		return SipVariant24, nil
	default:
		return 0, cuckooerr.New(cuckooerr.BadParams, "unknown hash variant %q", s)
	}
}

// Key128 is the two 64-bit SipHash key words.
type Key128 struct {
	K0 uint64
	K1 uint64
}

// ParseKeyHex decodes a 32-hex-character (16-byte) header specifier into a
// Key128, interpreting the bytes as (k0, k1) little-endian per the CLI
// contract.
func ParseKeyHex(s string) (Key128, error) {
	if len(s) != 32 {
		return Key128{}, cuckooerr.New(cuckooerr.BadParams, "header must be 32 hex characters, got %d", len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Key128{}, cuckooerr.New(cuckooerr.BadParams, "malformed hex header: %v", err)
	}
	return keyFromBytes(raw), nil
}

func keyFromBytes(raw []byte) Key128 {
	k0 := littleEndianUint64(raw[0:8])
	k1 := littleEndianUint64(raw[8:16])
	return Key128{K0: k0, K1: k1}
}

func littleEndianUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// Params is immutable for the lifetime of one solve attempt.
type Params struct {
	// EdgeBits is n: N = 2^n edge indices.
	EdgeBits uint

	// N is 2^EdgeBits, the total number of edges.
	N uint64

	// NodeMask is N-1, applied to every PRF output to fold it into the
	// per-side node index space.
	NodeMask uint64

	// Key is the two SipHash key words.
	Key Key128

	// Variant selects the PRF's round counts.
	Variant Variant

	// CycleLength is the target proof length k.
	CycleLength uint32
}

// NewParams validates and constructs a Params. edgeBits must be in [1,31];
// cycleLength must be in [2, 2^edgeBits].
func NewParams(edgeBits uint, key Key128, variant Variant, cycleLength uint32) (*Params, error) {
	if edgeBits < 1 || edgeBits > 31 {
		return nil, cuckooerr.New(cuckooerr.BadParams, "edge_bits %d out of range [1,31]", edgeBits)
	}
	n := uint64(1) << edgeBits
	if cycleLength < 2 || uint64(cycleLength) > n {
		return nil, cuckooerr.New(cuckooerr.BadParams, "cycle_length %d out of range [2,%d]", cycleLength, n)
	}
	return &Params{
		EdgeBits:    edgeBits,
		N:           n,
		NodeMask:    n - 1,
		Key:         key,
		Variant:     variant,
		CycleLength: cycleLength,
	}, nil
}
