package sniff_test

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/audioprobe/internal/sniff"
)

// Case is a single signature test case from the YAML golden file.
type Case struct {
	Description string `yaml:"description"`
	Data        string `yaml:"data"`
	Valid       bool   `yaml:"valid"`
}

// Group is a named collection of test cases.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadGroups(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/signatures.yml")
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	if len(groups) == 0 {
		t.Fatal("golden file holds no groups")
	}

	return groups
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, group := range loadGroups(t) {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range group.Cases {
				t.Run(tc.Description, func(t *testing.T) {
					t.Parallel()

					data, err := hex.DecodeString(tc.Data)
					if err != nil {
						t.Fatalf("bad hex in golden file: %v", err)
					}

					if got := sniff.Valid(data); got != tc.Valid {
						t.Errorf("Valid(%s) = %v, want %v", tc.Data, got, tc.Valid)
					}
				})
			}
		})
	}
}

func TestDetectMIMELabelsMP3(t *testing.T) {
	t.Parallel()

	data := append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 32)...)

	mime := sniff.DetectMIME(data)
	if !strings.HasPrefix(mime, "audio/") {
		t.Errorf("DetectMIME(ID3 data) = %q, want audio/* label", mime)
	}
}
