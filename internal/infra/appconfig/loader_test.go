package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/hostexpand/internal/domain"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_YAMLValues(t *testing.T) {
	root := t.TempDir()
	content := `
hostexpand:
  logging:
    debug: true
  diagnostics:
    quiet: true
`
	if err := os.WriteFile(filepath.Join(root, "hostexpand.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cfg.Logging.Debug || !cfg.Diagnostics.Quiet {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.Output.Force {
		t.Fatalf("unset keys must keep defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	root := t.TempDir()
	content := `
hostexpand:
  output:
    force: false
`
	if err := os.WriteFile(filepath.Join(root, "hostexpand.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOSTEXPAND_FORCE", "true")
	t.Setenv("HOSTEXPAND_QUIET", "true")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cfg.Output.Force {
		t.Fatalf("env override lost: %+v", cfg)
	}
	if !cfg.Diagnostics.Quiet {
		t.Fatalf("env-only key not applied: %+v", cfg)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "hostexpand.yaml"), []byte("hostexpand: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
