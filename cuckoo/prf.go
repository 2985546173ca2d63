// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

// prfInit returns the SipHash state words for key, XORed with the standard
// constants.
func prfInit(key Key128) (v0, v1, v2, v3 uint64) {
	v0 = key.K0 ^ 0x736f6d6570736575
	v1 = key.K1 ^ 0x646f72616e646f6d
	v2 = key.K0 ^ 0x6c7967656e657261
	v3 = key.K1 ^ 0x7465646279746573
	return
}

func siprounds(v0, v1, v2, v3 uint64, rounds int) (uint64, uint64, uint64, uint64) {
	for i := 0; i < rounds; i++ {
		v0 += v1
		v1 = v1<<13 | v1>>(64-13)
		v1 ^= v0
		v0 = v0<<32 | v0>>(64-32)

		v2 += v3
		v3 = v3<<16 | v3>>(64-16)
		v3 ^= v2

		v0 += v3
		v3 = v3<<21 | v3>>(64-21)
		v3 ^= v0

		v2 += v1
		v1 = v1<<17 | v1>>(64-17)
		v1 ^= v2
		v2 = v2<<32 | v2>>(64-32)
	}
	return v0, v1, v2, v3
}

// prfCD is SipHash-c-d over the 8-byte little-endian encoding of nonce, with
// the message-length byte 0x08 folded into the finalization per the RFC. c
// is the number of compression rounds per message block, d the number of
// finalization rounds.
func prfCD(key Key128, nonce uint64, c, d int) uint64 {
	v0, v1, v2, v3 := prfInit(key)

	// The only message word: the nonce itself, 8 bytes, little-endian.
	v3 ^= nonce
	v0, v1, v2, v3 = siprounds(v0, v1, v2, v3, c)
	v0 ^= nonce

	// Final padded block: an all-zero 7 bytes plus the length byte 0x08 in
	// the top byte, since the message is exactly 8 bytes long.
	const lengthBlock = uint64(8) << 56
	v3 ^= lengthBlock
	v0, v1, v2, v3 = siprounds(v0, v1, v2, v3, c)
	v0 ^= lengthBlock

	v2 ^= 0xff
	v0, v1, v2, v3 = siprounds(v0, v1, v2, v3, d)

	return v0 ^ v1 ^ v2 ^ v3
}

// prf12 is the weakened SipHash-1-2 PRF.
func prf12(key Key128, nonce uint64) uint64 {
	return prfCD(key, nonce, 1, 2)
}

// prf24 is the canonical SipHash-2-4 PRF.
func prf24(key Key128, nonce uint64) uint64 {
	return prfCD(key, nonce, 2, 4)
}

// prf dispatches on variant. Kept as a tagged two-way branch rather than an
// interface or function value: this call sits in the hottest loop of the
// whole solver (called on the order of N times per trimming pass) and must
// stay inlineable.
func prf(variant Variant, key Key128, nonce uint64) uint64 {
	if variant == SipVariant12 {
		return prf12(key, nonce)
	}
	return prf24(key, nonce)
}
