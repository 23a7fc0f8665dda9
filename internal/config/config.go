// Package config defines the runtime configuration and its validation.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds all runtime options, populated from flags and environment
// variables. Everything the probe needs arrives here explicitly; there is no
// process-wide state.
type Config struct {
	// Key is the hex-encoded primary key material.
	Key string `mapstructure:"key"`

	// KeyFile is a path to a file holding the hex-encoded key.
	// Mutually exclusive with Key.
	KeyFile string `mapstructure:"key-file"`

	// OutputDir receives accepted candidate plaintexts.
	OutputDir string `mapstructure:"output-dir"`

	// Parallel bounds the number of concurrent trials.
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// Preview is the number of leading candidate bytes shown per trial.
	Preview int `mapstructure:"preview" validate:"min=1,max=256"`

	// Schemes holds include patterns selecting a registry subset.
	Schemes []string `mapstructure:"scheme"`

	// SkipSchemes holds exclude patterns; excludes always win.
	SkipSchemes []string `mapstructure:"skip-scheme"`

	// SchemesFrom is a JSONC file with additional include patterns.
	SchemesFrom string `mapstructure:"schemes-from"`

	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet"`

	// Stats prints run statistics on completion.
	Stats bool `mapstructure:"stats"`

	// Files are the positional arguments: the encrypted inputs.
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags and the
// cross-field rules the tags cannot express.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Key != "" && c.KeyFile != "" {
		return errors.New("key and key-file are mutually exclusive")
	}

	if c.Key != "" {
		if _, err := hex.DecodeString(c.Key); err != nil {
			return fmt.Errorf("invalid key format: %w", err)
		}
	}

	return nil
}
