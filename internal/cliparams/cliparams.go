// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Package cliparams turns the flag contract shared by cuckoo-solve and
// cuckoo-bench into a *cuckoo.Params, a cuckoo.Mode, and a cuckoo.Budgets,
// so both binaries validate and wire the same way.
package cliparams

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/cuckoo-pow/solver/cuckoo"
	"github.com/cuckoo-pow/solver/cuckooerr"
)

// Config mirrors the flags common to both binaries.
type Config struct {
	Mode               string // "lean" or "mean"
	Hash               string // "sip12" or "sip24"
	EdgeBits           uint
	Threads            int
	CycleLength        uint32
	BucketBits         uint
	MemcapBytesPerEdge float64
	Header             string // 32 hex chars, or "" to generate one
}

// Resolved is the outcome of validating and wiring a Config.
type Resolved struct {
	Params  *cuckoo.Params
	Mode    cuckoo.Mode
	Budgets cuckoo.Budgets
	Header  string // the header actually used (random if Config.Header was empty)
}

// Resolve validates cfg and builds the pieces a SolverDriver needs. It
// generates a random 32-hex-character header via crypto/rand when
// cfg.Header is empty, deriving the key by FNV-1a per the CLI contract;
// otherwise it parses cfg.Header directly as (k0, k1) little-endian.
func Resolve(cfg Config) (Resolved, error) {
	variant, err := cuckoo.ParseVariant(cfg.Hash)
	if err != nil {
		return Resolved{}, err
	}

	var mode cuckoo.Mode
	switch cfg.Mode {
	case "lean":
		mode = cuckoo.ModeLean
	case "mean":
		mode = cuckoo.ModeMean
	default:
		return Resolved{}, cuckooerr.New(cuckooerr.BadParams, "unknown mode %q", cfg.Mode)
	}

	header := cfg.Header
	var key cuckoo.Key128
	if header == "" {
		header, err = randomHeaderHex()
		if err != nil {
			return Resolved{}, cuckooerr.New(cuckooerr.Internal, "generating random header: %v", err)
		}
		key = cuckoo.DeriveKeyFromHeader(header)
	} else {
		key, err = cuckoo.ParseKeyHex(header)
		if err != nil {
			return Resolved{}, err
		}
	}

	params, err := cuckoo.NewParams(cfg.EdgeBits, key, variant, cfg.CycleLength)
	if err != nil {
		return Resolved{}, err
	}

	budgets := cuckoo.Budgets{
		Threads:            cfg.Threads,
		BucketBits:         cfg.BucketBits,
		MemcapBytesPerEdge: cfg.MemcapBytesPerEdge,
	}

	return Resolved{Params: params, Mode: mode, Budgets: budgets, Header: header}, nil
}

func randomHeaderHex() (string, error) {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw[:]), nil
}
