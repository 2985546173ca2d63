// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cliparams

import (
	"testing"

	"github.com/cuckoo-pow/solver/cuckoo"
	"github.com/cuckoo-pow/solver/cuckooerr"
)

func baseConfig() Config {
	return Config{
		Mode:        "lean",
		Hash:        "sip24",
		EdgeBits:    16,
		Threads:     2,
		CycleLength: 42,
	}
}

func TestResolveGeneratesRandomHeaderWhenAbsent(t *testing.T) {
	r, err := Resolve(baseConfig())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(r.Header) != 32 {
		t.Fatalf("generated header length = %d, want 32", len(r.Header))
	}
	if r.Params.Variant != cuckoo.SipVariant24 {
		t.Fatalf("variant = %v, want SIP-2-4", r.Params.Variant)
	}
	if r.Mode != cuckoo.ModeLean {
		t.Fatalf("mode = %v, want ModeLean", r.Mode)
	}
}

func TestResolveParsesExplicitHeader(t *testing.T) {
	cfg := baseConfig()
	cfg.Header = "000102030405060708090a0b0c0d0e0f"

	r, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Header != cfg.Header {
		t.Fatalf("Header = %q, want %q", r.Header, cfg.Header)
	}
	want, _ := cuckoo.ParseKeyHex(cfg.Header)
	if r.Params.Key != want {
		t.Fatalf("Key = %+v, want %+v", r.Params.Key, want)
	}
}

func TestResolveRejectsUnknownMode(t *testing.T) {
	cfg := baseConfig()
	cfg.Mode = "bogus"
	_, err := Resolve(cfg)
	if !cuckooerr.Is(err, cuckooerr.BadParams) {
		t.Fatalf("err = %v, want BadParams", err)
	}
}

func TestResolveRejectsUnknownHash(t *testing.T) {
	cfg := baseConfig()
	cfg.Hash = "bogus"
	_, err := Resolve(cfg)
	if !cuckooerr.Is(err, cuckooerr.BadParams) {
		t.Fatalf("err = %v, want BadParams", err)
	}
}

func TestResolveRejectsMalformedHeader(t *testing.T) {
	cfg := baseConfig()
	cfg.Header = "not-hex"
	_, err := Resolve(cfg)
	if !cuckooerr.Is(err, cuckooerr.BadParams) {
		t.Fatalf("err = %v, want BadParams", err)
	}
}

func TestResolveRejectsOutOfRangeEdgeBits(t *testing.T) {
	cfg := baseConfig()
	cfg.EdgeBits = 0
	_, err := Resolve(cfg)
	if !cuckooerr.Is(err, cuckooerr.BadParams) {
		t.Fatalf("err = %v, want BadParams", err)
	}
}
