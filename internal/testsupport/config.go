package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"downsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The target directory exists and is empty; history recording stays enabled
// so store-backed paths are exercised by default.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.TargetDir = filepath.Join(base, "target")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")

	if err := os.MkdirAll(cfgVal.Paths.TargetDir, 0o755); err != nil {
		t.Fatalf("mkdir target: %v", err)
	}
	if err := cfgVal.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithOldAfterDays overrides the age threshold on the test config.
func WithOldAfterDays(days int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rules.OldAfterDays = days
	}
}

// WithOldFilesPolicy overrides the old-files placement policy.
func WithOldFilesPolicy(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rules.OldFilesPolicy = policy
	}
}

// WithHistoryDisabled turns off run history recording.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.TargetDir)
}
