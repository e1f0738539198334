package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/EmundoT/git-conventional/internal/types"
)

// ConfigFileName is the lint configuration file looked up at the repo root.
const ConfigFileName = ".commitlint.yml"

// maxYAMLFileSize is the maximum size of a .commitlint.yml file (1 MB).
// A generous cap; a config listing every type and scope a large monorepo
// uses is still well under 100 KB.
const maxYAMLFileSize = 1 << 20 // 1 MB

// YAMLStore provides generic YAML file I/O operations.
type YAMLStore[T any] struct {
	rootDir      string
	filename     string
	allowMissing bool // If true, missing file returns zero value instead of error
}

// NewYAMLStore creates a new YAML store for type T.
func NewYAMLStore[T any](rootDir, filename string, allowMissing bool) *YAMLStore[T] {
	return &YAMLStore[T]{
		rootDir:      rootDir,
		filename:     filename,
		allowMissing: allowMissing,
	}
}

// Path returns the full file path
func (s *YAMLStore[T]) Path() string {
	return filepath.Join(s.rootDir, s.filename)
}

// Exists reports whether the file is present.
func (s *YAMLStore[T]) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads and unmarshals the YAML file into type T. Files larger than
// maxYAMLFileSize are rejected to prevent memory exhaustion.
func (s *YAMLStore[T]) Load() (T, error) {
	var result T

	info, err := os.Stat(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}
	if info.Size() > maxYAMLFileSize {
		return result, fmt.Errorf("%s is too large (%d bytes, max %d)", s.filename, info.Size(), maxYAMLFileSize)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		return result, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", s.filename, err)
	}
	return result, nil
}

// Save marshals value to YAML and writes it to Path().
func (s *YAMLStore[T]) Save(value T) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.filename, err)
	}
	return os.WriteFile(s.Path(), data, 0o644)
}

// ConfigStore loads and saves the lint configuration.
type ConfigStore interface {
	Load() (types.LintConfig, error)
	Save(types.LintConfig) error
	Init() error
	Exists() bool
	Path() string
}

// yamlConfigStore is the YAML-file-backed ConfigStore.
type yamlConfigStore struct {
	*YAMLStore[types.LintConfig]
}

// NewConfigStore creates a ConfigStore rooted at dir. A missing file loads
// as DefaultLintConfig rather than an error.
func NewConfigStore(dir string) ConfigStore {
	return &yamlConfigStore{NewYAMLStore[types.LintConfig](dir, ConfigFileName, true)}
}

func (s *yamlConfigStore) Load() (types.LintConfig, error) {
	if !s.Exists() {
		return DefaultLintConfig(), nil
	}
	return s.YAMLStore.Load()
}

func (s *yamlConfigStore) Save(cfg types.LintConfig) error {
	return s.YAMLStore.Save(cfg)
}

// Init writes DefaultLintConfig to a fresh .commitlint.yml. An existing
// file is never overwritten.
func (s *yamlConfigStore) Init() error {
	if s.Exists() {
		return fmt.Errorf("%w: %s", ErrConfigExists, s.Path())
	}
	return s.Save(DefaultLintConfig())
}

// DefaultLintConfig returns the configuration used when no .commitlint.yml
// exists: the common conventional-commits vocabulary, 72-column subjects,
// and 100-column body lines.
func DefaultLintConfig() types.LintConfig {
	return types.LintConfig{
		Types: []string{
			"feat", "fix", "docs", "style", "refactor",
			"perf", "test", "build", "ci", "chore", "revert",
		},
		SubjectLimit: 72,
		BodyLimit:    100,
	}
}
