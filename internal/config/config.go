package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	DefaultExecPath = "rampack"
	DefaultDocPath  = "docs/operation-modes.md"

	// ExecPathEnv overrides DefaultExecPath.
	ExecPathEnv = "RAMPACK_EXEC"
)

// DefaultModes are the rampack modes documented in DefaultDocPath, in document order.
var DefaultModes = []string{"casino", "preview", "shape-preview", "trajectory"}

// Generator configures markdown-help.
type Generator struct {
	ExecPath string   `yaml:"exec" toml:"exec"`
	DocPath  string   `yaml:"doc" toml:"doc"`
	Modes    []string `yaml:"modes" toml:"modes"`
}

// Default returns the built-in configuration with environment overrides applied.
func Default() Generator {
	cfg := Generator{
		ExecPath: DefaultExecPath,
		DocPath:  DefaultDocPath,
		Modes:    append([]string(nil), DefaultModes...),
	}
	if env := strings.TrimSpace(os.Getenv(ExecPathEnv)); env != "" {
		cfg.ExecPath = env
	}
	return cfg
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file and overlays the
// values it sets on base.
func Load(path string, base Generator) (Generator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	var file Generator
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return base, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return base, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return base, fmt.Errorf("config: unsupported file type %q (want .yaml, .yml or .toml)", ext)
	}
	return base.Merge(file), nil
}

// Merge returns c with every non-empty field of override applied.
func (c Generator) Merge(override Generator) Generator {
	if override.ExecPath != "" {
		c.ExecPath = override.ExecPath
	}
	if override.DocPath != "" {
		c.DocPath = override.DocPath
	}
	if len(override.Modes) > 0 {
		c.Modes = append([]string(nil), override.Modes...)
	}
	return c
}

// Validate ensures the generator has something to run and somewhere to write.
func (c Generator) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ExecPath, validation.Required),
		validation.Field(&c.DocPath, validation.Required),
		validation.Field(&c.Modes, validation.Required, validation.By(uniqueModes)),
	)
}

func uniqueModes(value any) error {
	modes, _ := value.([]string)
	seen := make(map[string]struct{}, len(modes))
	for _, mode := range modes {
		if strings.TrimSpace(mode) == "" {
			return validation.NewError("config_mode_blank", "mode names must not be blank")
		}
		if _, ok := seen[mode]; ok {
			return validation.NewError("config_mode_duplicate", fmt.Sprintf("mode %q is listed twice", mode))
		}
		seen[mode] = struct{}{}
	}
	return nil
}
