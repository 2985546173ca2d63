// Copyright 2026 The Cuckoo-Pow Contributors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Command cuckoo-bench is the benchmark harness: it runs an attempt loop
// over fresh (or attempt-indexed) headers, times each attempt, aggregates
// statistics, and supports a baseline-compare mode that measures SIP-2-4
// against the weakened SIP-1-2 variant. None of this is core solver logic;
// it is the out-of-scope "embedding harness" spec.md names as an external
// collaborator.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cuckoo-pow/solver/cuckoo"
	"github.com/cuckoo-pow/solver/fingerprint"
	"github.com/cuckoo-pow/solver/internal/benchpool"
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
	fs := flag.NewFlagSet("cuckoo-bench", flag.ContinueOnError)

	mode := fs.String("mode", "lean", "trimming frontend: lean|mean")
	hash := fs.String("hash", "sip24", "PRF variant: sip12|sip24")
	edgeBits := fs.Uint("edge-bits", 0, "n, required, 1..31")
	threads := fs.Int("threads", 1, "worker count per attempt, >= 1")
	cycleLength := fs.Uint("cycle-length", 42, "target proof length k, default 42")
	bucketBits := fs.Uint("bucket-bits", 8, "bucket bits, mean mode only")
	memcap := fs.Float64("memcap-bytes-per-edge", 0, "lean mode only; reject solve if exceeded")
	header := fs.String("header", "", "32-hex-character key specifier; fixed base key swept by attempt index if given, else random per attempt")
	attempts := fs.Int("attempts", 1, "attempt count")
	parallelAttempts := fs.Int("parallel-attempts", 1, "max attempts run concurrently")
	maxRounds := fs.Int("max-rounds", 0, "trim round budget; 0 selects the mode default")
	baselineCompare := fs.Bool("baseline-compare", false, "run the same parameters under sip24 then sip12 and report the speed ratio")
	baselineStrict := fs.Bool("baseline-compare-strict", false, "exit 1 if median(sip12)/median(sip24) > 0.5")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *edgeBits == 0 {
		fmt.Fprintln(os.Stderr, "cuckoo-bench: --edge-bits is required")
		return 1
	}

	base := cliparams.Config{
		Mode:               *mode,
		EdgeBits:           *edgeBits,
		Threads:            *threads,
		CycleLength:        uint32(*cycleLength),
		BucketBits:         *bucketBits,
		MemcapBytesPerEdge: *memcap,
		Header:             *header,
	}

	if *baselineCompare {
		report, err := runBaselineCompare(base, *attempts, *parallelAttempts, *maxRounds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cuckoo-bench: %v\n", err)
			return 1
		}
		fmt.Printf("median(sip24)=%s median(sip12)=%s ratio(sip12/sip24)=%.4f\n",
			report.MedianSip24, report.MedianSip12, report.Ratio)
		if *baselineStrict && report.Ratio > 0.5 {
			fmt.Fprintf(os.Stderr, "cuckoo-bench: ratio %.4f exceeds 0.5\n", report.Ratio)
			return 1
		}
		return 0
	}

	base.Hash = *hash
	summary, err := runAttempts(base, *attempts, *parallelAttempts, *maxRounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cuckoo-bench: %v\n", err)
		return 1
	}

	fmt.Printf("attempts=%d found=%d median=%s\n", *attempts, summary.Found, summary.Median)
	return 0
}

// attemptOutcome is one attempt's timing and result, used to build a
// Summary or feed a BaselineReport.
type attemptOutcome struct {
	elapsed time.Duration
	found   bool
}

// Summary aggregates one attempt loop at a fixed variant.
type Summary struct {
	Found  int
	Median time.Duration
}

// BaselineReport compares SIP-2-4 against SIP-1-2 over the same parameters.
type BaselineReport struct {
	MedianSip24 time.Duration
	MedianSip12 time.Duration
	Ratio       float64
}

func runAttempts(base cliparams.Config, attempts, parallelAttempts, maxRounds int) (Summary, error) {
	outcomes := make([]attemptOutcome, attempts)
	var mu sync.Mutex
	var firstErr error

	pool := benchpool.New(parallelAttempts)
	pool.Run(attempts, func(i int) {
		cfg := base
		cfg.Header = attemptHeader(base.Header, i)

		resolved, err := cliparams.Resolve(cfg)
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		resolved.Budgets.MaxRounds = maxRounds

		start := time.Now()
		driver := cuckoo.NewSolverDriver(resolved.Params, resolved.Mode, resolved.Budgets)
		result := driver.Solve()
		elapsed := time.Since(start)

		found := result.Outcome == cuckoo.OutcomeFoundVerified
		outcomes[i] = attemptOutcome{elapsed: elapsed, found: found}

		fields := logrus.Fields{
			"attempt": i,
			"elapsed": elapsed,
			"found":   found,
		}
		if id, err := headerShortID(resolved.Header); err == nil {
			fields["header"] = id
		}
		if found {
			fields["proof"] = fingerprint.ProofHex(result.Proof)
		}
		logrus.WithFields(fields).Info("attempt complete")
	})

	if firstErr != nil {
		return Summary{}, firstErr
	}

	found := 0
	durations := make([]time.Duration, len(outcomes))
	for i, o := range outcomes {
		durations[i] = o.elapsed
		if o.found {
			found++
		}
	}
	return Summary{Found: found, Median: median(durations)}, nil
}

func runBaselineCompare(base cliparams.Config, attempts, parallelAttempts, maxRounds int) (BaselineReport, error) {
	sip24Cfg := base
	sip24Cfg.Hash = "sip24"
	sip24, err := runAttempts(sip24Cfg, attempts, parallelAttempts, maxRounds)
	if err != nil {
		return BaselineReport{}, err
	}

	sip12Cfg := base
	sip12Cfg.Hash = "sip12"
	sip12, err := runAttempts(sip12Cfg, attempts, parallelAttempts, maxRounds)
	if err != nil {
		return BaselineReport{}, err
	}

	var ratio float64
	if sip24.Median > 0 {
		ratio = float64(sip12.Median) / float64(sip24.Median)
	}

	return BaselineReport{MedianSip24: sip24.Median, MedianSip12: sip12.Median, Ratio: ratio}, nil
}

// attemptHeader picks the header for attempt i: if base is non-empty, the
// same base key XORed with the attempt counter in k0 (spec scenario 1);
// otherwise empty, telling cliparams.Resolve to generate a fresh random
// header for this attempt.
func attemptHeader(base string, i int) string {
	if base == "" {
		return ""
	}
	key, err := parseHexKeyQuiet(base)
	if err != nil {
		return base
	}
	key.K0 ^= uint64(i)
	return encodeKeyHex(key)
}

func median(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(ds))
	copy(sorted, ds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
