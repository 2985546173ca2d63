// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Package cuckooerr classifies the errors a solve or verify attempt can
// surface. The solver and the verifier never hand callers a bare error:
// every failure is tagged with a Kind so a caller can tell a normal
// NotFound outcome apart from a budget violation or an internal defect.
package cuckooerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure surfaced by the cuckoo package.
type Kind int

const (
	// BadParams means n, k, the variant or the key were out of range or
	// malformed. Raised before any allocation.
	BadParams Kind = iota

	// MemoryCapExceeded means the computed persistent footprint per edge
	// exceeds the caller's memcap. Raised before any allocation.
	MemoryCapExceeded

	// NotFound is the normal negative outcome of a solve attempt: trimming
	// converged (or the round budget ran out) without a k-cycle surviving.
	NotFound

	// VerificationFailed means the solver produced a candidate the
	// verifier rejected. This is a solver defect, not a normal negative.
	VerificationFailed

	// Internal means a precondition was violated that should never happen
	// in production, e.g. a corrupt bitset length.
	Internal
)

func (k Kind) String() string {
	switch k {
	case BadParams:
		return "BAD_PARAMS"
	case MemoryCapExceeded:
		return "MEMORY_CAP_EXCEEDED"
	case NotFound:
		return "NOT_FOUND"
	case VerificationFailed:
		return "VERIFICATION_FAILED"
	case Internal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Error is a Kind-tagged error. Callers that need to branch on the failure
// class use errors.As to recover the Kind; everyone else just reads Error().
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// New builds a Kind-tagged error with a formatted reason.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given Kind. It follows the standard
// unwrap chain so a wrapped *Error still matches.
func Is(err error, kind Kind) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind
}
