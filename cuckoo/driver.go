// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import (
	"github.com/sirupsen/logrus"

	"github.com/cuckoo-pow/solver/cuckooerr"
)

// Mode selects the trimming frontend a SolverDriver wires in front of
// recovery and verification.
type Mode int

const (
	// ModeLean uses LeanTrim, the bitset-based leaf eliminator.
	ModeLean Mode = iota
	// ModeMean uses MeanTrim, the bucketed-degree alternative.
	ModeMean
)

// Outcome is the terminal state of a solve attempt.
type Outcome int

const (
	// OutcomeFoundVerified means the solver produced a proof and the
	// independent verifier accepted it.
	OutcomeFoundVerified Outcome = iota
	// OutcomeNotFound means trimming converged (or the round budget ran
	// out) without a k-cycle surviving. Not an error.
	OutcomeNotFound
	// OutcomeFailedMemcap means the computed persistent footprint per
	// edge exceeds the caller's memcap; the driver never allocated.
	OutcomeFailedMemcap
	// OutcomeFailedVerify means the solver produced a candidate the
	// verifier rejected. This is a solver defect signal, not a normal
	// negative outcome.
	OutcomeFailedVerify
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFoundVerified:
		return "FOUND_VERIFIED"
	case OutcomeNotFound:
		return "NOT_FOUND"
	case OutcomeFailedMemcap:
		return "FAILED_MEMCAP"
	case OutcomeFailedVerify:
		return "FAILED_VERIFY"
	default:
		return "UNKNOWN"
	}
}

// Budgets bounds one solve attempt.
type Budgets struct {
	// MaxRounds caps trimming rounds. Zero selects the trim mode's
	// default.
	MaxRounds int
	// MemcapBytesPerEdge caps the lean trimmer's persistent footprint per
	// edge. Zero (or negative) disables the check, matching "generous"
	// mean-mode usage.
	MemcapBytesPerEdge float64
	// BucketBits configures MeanTrim; ignored in lean mode.
	BucketBits uint
	// Threads is the worker count for trimming passes.
	Threads int
}

// Result is the outcome of one SolverDriver attempt.
type Result struct {
	Outcome    Outcome
	Proof      []uint64 // present only when Outcome == OutcomeFoundVerified
	RoundsRun  int
	AliveEdges uint64
	Err        error
}

// SolverDriver wires trimming, recovery, and verification into a single
// state machine: INIT -> TRIM -> RECOVER -> VERIFY -> DONE. It enforces the
// memory cap before allocating anything and never reports success without
// running the independent verifier.
type SolverDriver struct {
	params  *Params
	mode    Mode
	budgets Budgets
}

// NewSolverDriver constructs a driver for one attempt. It does not allocate
// any bitsets yet; that happens in Solve, after the memcap check.
func NewSolverDriver(params *Params, mode Mode, budgets Budgets) *SolverDriver {
	return &SolverDriver{params: params, mode: mode, budgets: budgets}
}

// Solve runs the attempt to completion and returns its terminal Result.
func (d *SolverDriver) Solve() Result {
	log := logrus.WithFields(logrus.Fields{
		"edge_bits": d.params.EdgeBits,
		"variant":   d.params.Variant.String(),
		"k":         d.params.CycleLength,
		"mode":      d.modeName(),
	})

	if d.mode == ModeLean && d.budgets.MemcapBytesPerEdge > 0 {
		if got := MemoryBytesPerEdge(d.params.N); got > d.budgets.MemcapBytesPerEdge {
			err := cuckooerr.New(cuckooerr.MemoryCapExceeded,
				"lean trim needs %.3f bytes/edge, cap is %.3f", got, d.budgets.MemcapBytesPerEdge)
			log.WithError(err).Warn("memcap exceeded before allocation")
			return Result{Outcome: OutcomeFailedMemcap, Err: err}
		}
	}

	log.Debug("trim phase starting")
	var alive *Bitset
	var rounds int
	switch d.mode {
	case ModeMean:
		mt := NewMeanTrim(d.params, d.budgets.Threads, d.budgets.BucketBits)
		alive, rounds = mt.Run(d.budgets.MaxRounds)
	default:
		lt := NewLeanTrim(d.params, d.budgets.Threads)
		alive, rounds = lt.Run(d.budgets.MaxRounds)
	}

	aliveCount := alive.PopCount()
	log.WithField("alive_edges", aliveCount).Debug("trim phase converged")

	log.Debug("recovery phase starting")
	proof, found := RecoverCycle(d.params, alive, d.params.CycleLength)
	if !found {
		log.Info("no cycle recovered")
		return Result{Outcome: OutcomeNotFound, AliveEdges: aliveCount, RoundsRun: rounds}
	}

	log.Debug("verify phase starting")
	ok, reason := Verify(d.params, proof, d.params.CycleLength)
	if !ok {
		err := cuckooerr.New(cuckooerr.VerificationFailed, "%s", reason)
		log.WithError(err).Error("solver produced a proof the verifier rejected")
		return Result{Outcome: OutcomeFailedVerify, AliveEdges: aliveCount, RoundsRun: rounds, Err: err}
	}

	log.Info("cycle found and verified")
	return Result{Outcome: OutcomeFoundVerified, Proof: proof, AliveEdges: aliveCount, RoundsRun: rounds}
}

func (d *SolverDriver) modeName() string {
	if d.mode == ModeMean {
		return "mean"
	}
	return "lean"
}
