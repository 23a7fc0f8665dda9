package config_test

import (
	"testing"

	"github.com/idelchi/audioprobe/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Key:      "aabbccdd",
		Parallel: 4,
		Preview:  32,
		Files:    []string{"note.bin"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(*config.Config) {}, false},
		{"key file instead of key", func(c *config.Config) { c.Key = ""; c.KeyFile = "key.hex" }, false},
		{"no key at all is allowed here", func(c *config.Config) { c.Key = "" }, false},
		{"key and key-file together", func(c *config.Config) { c.KeyFile = "key.hex" }, true},
		{"odd hex key", func(c *config.Config) { c.Key = "abc" }, true},
		{"non-hex key", func(c *config.Config) { c.Key = "zz" }, true},
		{"no files", func(c *config.Config) { c.Files = nil }, true},
		{"zero parallel", func(c *config.Config) { c.Parallel = 0 }, true},
		{"preview too large", func(c *config.Config) { c.Preview = 1024 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
