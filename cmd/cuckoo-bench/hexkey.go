// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cuckoo-pow/solver/cuckoo"
	"github.com/cuckoo-pow/solver/fingerprint"
)

func parseHexKeyQuiet(s string) (cuckoo.Key128, error) {
	return cuckoo.ParseKeyHex(s)
}

func encodeKeyHex(key cuckoo.Key128) string {
	var raw [16]byte
	binary.LittleEndian.PutUint64(raw[0:8], key.K0)
	binary.LittleEndian.PutUint64(raw[8:16], key.K1)
	return hex.EncodeToString(raw[:])
}

// headerShortID renders a compact per-attempt identifier for log lines. It
// only succeeds for a well-formed 32-hex-character header; attempts using a
// harness-generated random header always have one.
func headerShortID(headerHex string) (string, error) {
	key, err := cuckoo.ParseKeyHex(headerHex)
	if err != nil {
		return "", err
	}
	var raw [16]byte
	binary.LittleEndian.PutUint64(raw[0:8], key.K0)
	binary.LittleEndian.PutUint64(raw[8:16], key.K1)
	return fingerprint.HeaderShortIDHex(raw), nil
}
