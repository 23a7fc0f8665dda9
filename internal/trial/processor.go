package trial

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/audioprobe/internal/config"
	"github.com/idelchi/audioprobe/internal/fileutil"
	"github.com/idelchi/audioprobe/internal/filter"
	"github.com/idelchi/audioprobe/internal/scheme"
	"github.com/idelchi/audioprobe/internal/sniff"
)

// Processor runs the trial battery against encrypted inputs.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// key stores the decoded primary key bytes
	key []byte

	// specs is the resolved registry subset, in enumeration order
	specs []scheme.Spec
}

// NewProcessor creates a new Processor with the given configuration.
// It decodes the primary key and resolves the scheme subset; failures here
// are input errors that abort the run before any trial.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	var (
		primaryKey []byte
		err        error
	)

	switch {
	case cfg.Key != "":
		primaryKey, err = key.FromHex(cfg.Key)
	case cfg.KeyFile != "":
		var raw []byte

		raw, err = os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		primaryKey, err = key.FromHex(strings.TrimSpace(string(raw)))
	default:
		return nil, errors.New("no key supplied: use --key or --key-file")
	}

	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	if len(primaryKey) == 0 {
		return nil, errors.New("decoded key is empty")
	}

	includes := append([]string{}, cfg.Schemes...)

	if cfg.SchemesFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.SchemesFrom)
		if err != nil {
			return nil, fmt.Errorf("loading scheme patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	specs, err := filter.Resolve(includes, cfg.SkipSchemes)
	if err != nil {
		return nil, fmt.Errorf("resolving schemes: %w", err)
	}

	return &Processor{
		cfg:   cfg,
		key:   primaryKey,
		specs: specs,
	}, nil
}

// Key returns the decoded primary key bytes. The slice is shared read-only;
// trials never mutate it.
func (p *Processor) Key() []byte { return p.key }

// Specs returns the resolved trial schemes in enumeration order.
func (p *Processor) Specs() []scheme.Spec { return p.specs }

// ProbeFile reads the encrypted input and runs the battery against it.
// Read failures and empty inputs are fatal; per-trial failures are not.
func (p *Processor) ProbeFile(path string) ([]Result, error) {
	ciphertext, err := os.ReadFile(path) //nolint:gosec // path is a user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("input %q is empty", path)
	}

	if p.cfg.OutputDir != "" {
		const dirPerm = 0o750

		if err := os.MkdirAll(p.cfg.OutputDir, dirPerm); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return p.Probe(filepath.Base(path), ciphertext), nil
}

// Probe runs every resolved scheme against ciphertext. Trials execute
// concurrently but results are collected by registry index, so the returned
// order is the enumeration order regardless of completion order.
func (p *Processor) Probe(name string, ciphertext []byte) []Result {
	results := make([]Result, len(p.specs))

	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	for idx, spec := range p.specs {
		group.Go(func() error {
			results[idx] = p.runTrial(name, spec, ciphertext)

			return nil
		})
	}

	// Goroutines only record outcomes; Wait cannot fail.
	_ = group.Wait()

	return results
}

// runTrial executes one (scheme, key) pair. Errors are captured in the
// result and never propagate; this is the failure-isolation guarantee that
// keeps one unsupported scheme from aborting its siblings.
func (p *Processor) runTrial(name string, spec scheme.Spec, ciphertext []byte) Result {
	result := Result{Scheme: spec.Name, KeyName: spec.Derive.String()}

	plaintext, err := spec.Decrypt(ciphertext, p.key)
	if err != nil {
		result.Err = err

		return result
	}

	result.Preview = preview(plaintext, p.cfg.Preview)
	result.Valid = sniff.Valid(plaintext)

	if !result.Valid {
		return result
	}

	result.MIME = sniff.DetectMIME(plaintext)

	outPath := p.outputPath(name, spec.Name)

	const ownerReadWrite = 0o600

	size, err := fileutil.WriteAtomic(outPath, plaintext, ownerReadWrite)
	if err != nil {
		result.Err = fmt.Errorf("persisting candidate: %w", err)

		return result
	}

	result.Output = outPath
	result.OutputSize = size

	return result
}

// outputPath names the persisted candidate after the input and the scheme
// that produced it: <input-base>.<scheme>.mp3 in the output directory.
func (p *Processor) outputPath(name, schemeName string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	return filepath.Join(p.cfg.OutputDir, base+"."+schemeName+".mp3")
}

// preview copies the leading n bytes of data so the result owns its buffer.
func preview(data []byte, n int) []byte {
	if len(data) < n {
		n = len(data)
	}

	out := make([]byte, n)
	copy(out, data)

	return out
}
