// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import (
	"testing"

	"github.com/cuckoo-pow/solver/cuckooerr"
)

func TestParseKeyHex(t *testing.T) {
	key, err := ParseKeyHex("0001020304050607" + "08090a0b0c0d0e0f")
	if err != nil {
		t.Fatal(err)
	}
	if key.K0 != 0x0706050403020100 || key.K1 != 0x0f0e0d0c0b0a0908 {
		t.Fatalf("got %#v", key)
	}
}

func TestParseKeyHexRejectsBadLength(t *testing.T) {
	if _, err := ParseKeyHex("abcd"); err == nil {
		t.Fatal("expected an error for a too-short header")
	}
}

func TestParseKeyHexRejectsBadHex(t *testing.T) {
	if _, err := ParseKeyHex("zz" + "000000000000000000000000000000"); err == nil {
		t.Fatal("expected an error for malformed hex")
	}
}

func TestParseVariant(t *testing.T) {
	if v, err := ParseVariant("sip12"); err != nil || v != SipVariant12 {
		t.Fatalf("sip12: v=%v err=%v", v, err)
	}
	if v, err := ParseVariant("sip24"); err != nil || v != SipVariant24 {
		t.Fatalf("sip24: v=%v err=%v", v, err)
	}
	if _, err := ParseVariant("sip36"); err == nil {
		t.Fatal("expected an error for an unknown variant")
	}
}

func TestNewParamsRejectsOutOfRangeEdgeBits(t *testing.T) {
	key := Key128{}
	if _, err := NewParams(0, key, SipVariant24, 42); err == nil {
		t.Fatal("expected BAD_PARAMS for edge_bits=0")
	}
	if _, err := NewParams(32, key, SipVariant24, 42); err == nil {
		t.Fatal("expected BAD_PARAMS for edge_bits=32")
	}
}

func TestNewParamsRejectsOutOfRangeCycleLength(t *testing.T) {
	key := Key128{}
	if _, err := NewParams(4, key, SipVariant24, 1); err == nil {
		t.Fatal("expected BAD_PARAMS for k=1")
	}
	if _, err := NewParams(4, key, SipVariant24, 17); err == nil {
		t.Fatal("expected BAD_PARAMS for k > N")
	}
}

func TestNewParamsComputesNAndMask(t *testing.T) {
	p, err := NewParams(12, Key128{}, SipVariant24, 42)
	if err != nil {
		t.Fatal(err)
	}
	if p.N != 1<<12 {
		t.Fatalf("N = %d, want %d", p.N, 1<<12)
	}
	if p.NodeMask != p.N-1 {
		t.Fatalf("NodeMask = %d, want %d", p.NodeMask, p.N-1)
	}
}

func TestNewParamsErrorIsBadParams(t *testing.T) {
	_, err := NewParams(0, Key128{}, SipVariant24, 42)
	if !cuckooerr.Is(err, cuckooerr.BadParams) {
		t.Fatalf("expected BAD_PARAMS kind, got %v", err)
	}
}
