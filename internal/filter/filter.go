// Package filter subsets the trial registry by scheme-name patterns.
// Empty includes means "run everything". Excludes always win.
package filter

import (
	"fmt"

	"github.com/idelchi/audioprobe/internal/scheme"
	"github.com/idelchi/audioprobe/pkg/namematch"
)

// Filter selects schemes based on include/exclude glob patterns.
type Filter struct {
	includes *namematch.Matcher
	excludes *namematch.Matcher

	hasIncludes bool
}

// NewFilter compiles include/exclude patterns into a reusable filter.
func NewFilter(includes, excludes []string) (*Filter, error) {
	inc, err := namematch.NewMatcher(includes)
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := namematch.NewMatcher(excludes)
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{includes: inc, excludes: exc, hasIncludes: len(includes) > 0}, nil
}

// Match returns true if the named scheme should run.
func (f *Filter) Match(name string) bool {
	included := !f.hasIncludes || f.includes.MatchAny(name)
	excluded := f.excludes.MatchAny(name)

	return included && !excluded
}

// Resolve applies include/exclude patterns to the registry, preserving
// enumeration order. Every include pattern must match at least one scheme;
// a pattern matching nothing is an input error, not a silent no-op.
func Resolve(includes, excludes []string) ([]scheme.Spec, error) {
	flt, err := NewFilter(includes, excludes)
	if err != nil {
		return nil, err
	}

	registry := scheme.Registry()

	var specs []scheme.Spec

	for _, spec := range registry {
		if flt.Match(spec.Name) {
			specs = append(specs, spec)
		}
	}

	for _, pattern := range includes {
		matcher, err := namematch.NewMatcher([]string{pattern})
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		var count int

		for _, spec := range registry {
			if matcher.MatchAny(spec.Name) {
				count++
			}
		}

		if count == 0 {
			return nil, fmt.Errorf("%w: no scheme matches %q", scheme.ErrUnknownScheme, pattern)
		}
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: all schemes excluded", scheme.ErrUnknownScheme)
	}

	return specs, nil
}
