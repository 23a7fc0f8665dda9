// Package logic implements the core business logic for the probe, sniff and
// schemes commands.
package logic

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/audioprobe/internal/config"
	"github.com/idelchi/audioprobe/internal/trial"
)

// Run executes the trial battery against every input file and reports one
// line per trial, in registry enumeration order.
func Run(cfg *config.Config) error {
	start := time.Now()

	proc, err := trial.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	if !cfg.Quiet {
		fmt.Printf("key: %s (%d bytes), %d schemes\n", //nolint:forbidigo
			hex.EncodeToString(proc.Key()), len(proc.Key()), len(proc.Specs()))
	}

	var accepted, errored, trials int

	var totalSize int64

	for _, file := range cfg.Files {
		results, err := proc.ProbeFile(file)
		if err != nil {
			return fmt.Errorf("probing %q: %w", file, err)
		}

		if !cfg.Quiet {
			fmt.Printf("\n%s\n", file) //nolint:forbidigo
		}

		for _, res := range results {
			trials++

			printResult(res, cfg.Quiet)

			switch {
			case res.Err != nil:
				errored++
			case res.Valid:
				accepted++
				totalSize += res.OutputSize
			}
		}
	}

	if cfg.Stats {
		printStats(len(cfg.Files), trials, accepted, errored, totalSize, time.Since(start))
	}

	return nil
}

// printResult emits one report line per trial. Failures are part of the
// report, not hidden: the operator needs to tell "wrong scheme" apart from
// "unsupported parameters" at a glance.
func printResult(res trial.Result, quiet bool) {
	label := res.Scheme + "/" + res.KeyName

	switch {
	case res.Err != nil:
		fmt.Fprintf(os.Stderr, "  %-26s error: %v\n", label, res.Err)
	case res.Valid:
		fmt.Printf("  %-26s %s  MATCH %s -> %s\n", //nolint:forbidigo
			label, hexPreview(res.Preview), res.MIME, res.Output)
	case !quiet:
		fmt.Printf("  %-26s %s  no match\n", label, hexPreview(res.Preview)) //nolint:forbidigo
	}
}

// hexPreview renders leading bytes as space-separated lowercase hex.
func hexPreview(data []byte) string {
	var buf strings.Builder

	for i, b := range data {
		if i > 0 {
			buf.WriteByte(' ')
		}

		fmt.Fprintf(&buf, "%02x", b)
	}

	return buf.String()
}

func printStats(files, trials, accepted, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Files:     %d\n", files)
	fmt.Fprintf(os.Stderr, "  Trials:    %d\n", trials)
	fmt.Fprintf(os.Stderr, "  Accepted:  %d\n", accepted)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
