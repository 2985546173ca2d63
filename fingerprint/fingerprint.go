// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Package fingerprint provides short, human-readable digests for benchmark
// and CLI logging. Nothing here feeds back into solving, trimming,
// recovery, or verification; it exists purely so a long attempt loop can
// print a compact identifier instead of 42 raw edge indices or a 16-byte
// header on every line.
package fingerprint

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// Proof computes a 32-byte blake2b digest of a proof's edge indices,
// encoded big-endian in the order given. Two proofs with the same
// edge set but different element order produce different digests; callers
// that want order independence should sort before calling.
func Proof(edges []uint64) [32]byte {
	buf := make([]byte, 8*len(edges))
	for i, e := range edges {
		binary.BigEndian.PutUint64(buf[i*8:], e)
	}
	return blake2b.Sum256(buf)
}

// ProofHex is Proof hex-encoded, for direct inclusion in a log line.
func ProofHex(edges []uint64) string {
	sum := Proof(edges)
	return hex.EncodeToString(sum[:])
}

// shortIDSize matches the teacher's short transaction identifiers: long
// enough to distinguish attempts in a log stream, short enough to read.
const shortIDSize = 6

// HeaderShortID derives a compact 6-byte identifier for a 16-byte attempt
// header, keyed by the header's own two halves via SipHash-2-4. It is a
// convenience for correlating benchmark log lines across an attempt loop,
// not a consensus value.
func HeaderShortID(header [16]byte) [shortIDSize]byte {
	k0 := binary.LittleEndian.Uint64(header[:8])
	k1 := binary.LittleEndian.Uint64(header[8:16])

	h := siphash.Hash(k0, k1, header[:])

	var full [8]byte
	binary.LittleEndian.PutUint64(full[:], h)

	var id [shortIDSize]byte
	copy(id[:], full[:shortIDSize])
	return id
}

// HeaderShortIDHex is HeaderShortID hex-encoded.
func HeaderShortIDHex(header [16]byte) string {
	id := HeaderShortID(header)
	return hex.EncodeToString(id[:])
}
