// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Command cuckoo-solve runs a single Cuckoo/Cuckatoo solve attempt and
// prints the result. It is the thin embedding harness spec.md treats as an
// external collaborator: argument parsing only, no solver logic of its
// own.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cuckoo-pow/solver/cuckoo"
	"github.com/cuckoo-pow/solver/cuckooerr"
	"github.com/cuckoo-pow/solver/internal/cliparams"
)

func init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cuckoo-solve", flag.ContinueOnError)

	mode := fs.String("mode", "lean", "trimming frontend: lean|mean")
	hash := fs.String("hash", "sip24", "PRF variant: sip12|sip24")
	edgeBits := fs.Uint("edge-bits", 0, "n, required, 1..31")
	threads := fs.Int("threads", 1, "worker count, >= 1")
	cycleLength := fs.Uint("cycle-length", 42, "target proof length k")
	bucketBits := fs.Uint("bucket-bits", 8, "bucket bits, mean mode only")
	memcap := fs.Float64("memcap-bytes-per-edge", 0, "lean mode only; reject solve if exceeded")
	header := fs.String("header", "", "32-hex-character (16-byte) key specifier; random if absent")
	maxRounds := fs.Int("max-rounds", 0, "trim round budget; 0 selects the mode default")
	ascending := fs.Bool("sorted", false, "print the proof sorted ascending instead of insertion order")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *edgeBits == 0 {
		fmt.Fprintln(os.Stderr, "cuckoo-solve: --edge-bits is required")
		return 1
	}

	cfg := cliparams.Config{
		Mode:               *mode,
		Hash:               *hash,
		EdgeBits:           *edgeBits,
		Threads:            *threads,
		CycleLength:        uint32(*cycleLength),
		BucketBits:         *bucketBits,
		MemcapBytesPerEdge: *memcap,
		Header:             *header,
	}

	resolved, err := cliparams.Resolve(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cuckoo-solve: %v\n", err)
		return 1
	}
	resolved.Budgets.MaxRounds = *maxRounds

	logrus.WithFields(logrus.Fields{
		"header": resolved.Header,
		"mode":   *mode,
		"hash":   *hash,
	}).Info("starting attempt")

	driver := cuckoo.NewSolverDriver(resolved.Params, resolved.Mode, resolved.Budgets)
	result := driver.Solve()

	switch result.Outcome {
	case cuckoo.OutcomeFoundVerified:
		fmt.Println(encodeProof(result.Proof, *ascending))
		return 0
	case cuckoo.OutcomeNotFound:
		fmt.Fprintln(os.Stderr, "cuckoo-solve: no cycle found")
		return 0
	case cuckoo.OutcomeFailedMemcap:
		fmt.Fprintf(os.Stderr, "cuckoo-solve: %v\n", result.Err)
		return 2
	case cuckoo.OutcomeFailedVerify:
		fmt.Fprintf(os.Stderr, "cuckoo-solve: solver defect: %v\n", result.Err)
		return 1
	default:
		fmt.Fprintf(os.Stderr, "cuckoo-solve: %v\n", cuckooerr.New(cuckooerr.Internal, "unrecognized outcome"))
		return 1
	}
}

// encodeProof renders the solved edge indices as ASCII integers separated
// by commas, in Recovery's insertion order by default. Verifiers must
// accept either order.
func encodeProof(proof []uint64, ascending bool) string {
	out := make([]uint64, len(proof))
	copy(out, proof)
	if ascending {
		for i := 1; i < len(out); i++ {
			for j := i; j > 0 && out[j-1] > out[j]; j-- {
				out[j-1], out[j] = out[j], out[j-1]
			}
		}
	}
	parts := make([]string, len(out))
	for i, e := range out {
		parts[i] = strconv.FormatUint(e, 10)
	}
	return strings.Join(parts, ",")
}
