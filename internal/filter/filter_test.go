package filter_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/audioprobe/internal/filter"
	"github.com/idelchi/audioprobe/internal/scheme"
)

func names(specs []scheme.Spec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Name
	}

	return out
}

func TestResolveAllByDefault(t *testing.T) {
	t.Parallel()

	specs, err := filter.Resolve(nil, nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if len(specs) != len(scheme.Registry()) {
		t.Errorf("Resolve(nil, nil) returned %d schemes, want full registry", len(specs))
	}
}

func TestResolveIncludePattern(t *testing.T) {
	t.Parallel()

	specs, err := filter.Resolve([]string{"aes-*"}, nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	for _, name := range names(specs) {
		if !strings.HasPrefix(name, "aes-") {
			t.Errorf("unexpected scheme %q for include aes-*", name)
		}
	}

	if len(specs) != 6 {
		t.Errorf("Resolve(aes-*) returned %d schemes, want 6", len(specs))
	}
}

// Excludes win over includes, and order stays enumeration order.
func TestResolveExcludeWins(t *testing.T) {
	t.Parallel()

	specs, err := filter.Resolve(nil, []string{"aes-*", "xor"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	want := []string{"rc4", "rc4-mi"}
	got := names(specs)

	if len(got) != len(want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Resolve[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// An include pattern that matches nothing is an input error, not a no-op.
func TestResolveUnmatchedInclude(t *testing.T) {
	t.Parallel()

	if _, err := filter.Resolve([]string{"rot13"}, nil); !errors.Is(err, scheme.ErrUnknownScheme) {
		t.Errorf("Resolve(rot13) = %v, want ErrUnknownScheme", err)
	}
}

func TestResolveEverythingExcluded(t *testing.T) {
	t.Parallel()

	if _, err := filter.Resolve(nil, []string{"*"}); err == nil {
		t.Error("Resolve with all schemes excluded expected error, got nil")
	}
}

func TestLoadPatterns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schemes.jsonc")

	content := `// block trials only
[
  "aes-*", // all AES variants
  "rc4",
]`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing patterns file: %v", err)
	}

	patterns, err := filter.LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns error: %v", err)
	}

	want := []string{"aes-*", "rc4"}
	if len(patterns) != len(want) {
		t.Fatalf("LoadPatterns = %v, want %v", patterns, want)
	}

	for i := range want {
		if patterns[i] != want[i] {
			t.Errorf("LoadPatterns[%d] = %q, want %q", i, patterns[i], want[i])
		}
	}
}
