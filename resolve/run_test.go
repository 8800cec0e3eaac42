package resolve

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"cssc/compat"
	"cssc/config"
	"cssc/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()

	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

// runCommand drives the resolve command the way main wires it up.
func runCommand(t *testing.T, ctx context.Context, args ...string) error {
	t.Helper()

	cmd := &cli.Command{
		Name:   "resolve",
		Action: Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "profile"},
			&cli.StringFlag{Name: "format"},
			&cli.StringFlag{Name: "output"},
			&cli.StringFlag{Name: "dataset"},
			&cli.BoolFlag{Name: "overwrite"},
		},
	}
	return cmd.Run(ctx, append([]string{"resolve"}, args...))
}

func TestRun_NoTargets(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	if err := runCommand(t, ctx); err == nil {
		t.Error("expected error without targets")
	}
}

func TestRun_ProfileAndTargetsExclusive(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	err := runCommand(t, ctx, "--profile", "defaults", "chrome=90")
	if err == nil {
		t.Error("expected error combining --profile with explicit targets")
	}
}

func TestRun_UnknownProfile(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	if err := runCommand(t, ctx, "--profile", "nonexistent"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestRun_WritesOutputFile(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	tmpDir := t.TempDir()
	tmpl := filepath.Join(tmpDir, "result-{{.Format}}")

	if err := runCommand(t, ctx, "--format", "json", "--output", tmpl, "chrome=90", "firefox=88"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "result-json.json"))
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `"engine": "chrome"`) || !strings.Contains(text, "nesting") {
		t.Errorf("unexpected output:\n%s", text)
	}
	// inline-style is forced unsupported by the default configuration
	if !strings.Contains(text, "inline-style") {
		t.Errorf("default overrides not applied:\n%s", text)
	}
}

func TestRun_NoOverwriteByDefault(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "result")

	if err := runCommand(t, ctx, "--output", output, "chrome=90"); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := runCommand(t, ctx, "--output", output, "chrome=90"); err == nil {
		t.Error("expected error overwriting existing file")
	}
	if err := runCommand(t, ctx, "--overwrite", "--output", output, "chrome=90"); err != nil {
		t.Errorf("Run() with --overwrite error = %v", err)
	}
}

func TestRun_ProfileExpansion(t *testing.T) {
	ctx, env := setupTestEnv(t)
	tmpDir := t.TempDir()
	env.Cfg.Resolve.Profiles["legacy"] = []string{"ie=11"}
	output := filepath.Join(tmpDir, "{{.Profile}}")

	if err := runCommand(t, ctx, "--format", "yaml", "--output", output, "--profile", "legacy"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "legacy.yaml"))
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "engine: ie") {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestRun_BadDataset(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("features:\n  what: {}\n"), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	if err := runCommand(t, ctx, "--dataset", path, "chrome=90"); err == nil {
		t.Error("expected error for broken dataset")
	}
}

func TestOverrideMasks(t *testing.T) {
	conf := &config.OverridesConfig{
		ForceSupported:   []string{"nesting"},
		ForceUnsupported: []string{"inline-style"},
	}

	overrides, mask, err := overrideMasks(conf)
	if err != nil {
		t.Fatalf("overrideMasks() error = %v", err)
	}

	expectedMask := compat.FeatureSet(compat.FeatureNesting) | compat.FeatureSet(compat.FeatureInlineStyle)
	if mask != expectedMask {
		t.Errorf("mask = %s, want %s", mask, expectedMask)
	}
	if overrides != compat.FeatureSet(compat.FeatureInlineStyle) {
		t.Errorf("overrides = %s, want inline-style only", overrides)
	}

	// forcing applies on top of a computed result
	computed := compat.FeatureSet(compat.FeatureNesting) | compat.FeatureSet(compat.FeatureHWB)
	result := compat.ApplyOverrides(computed, overrides, mask)
	if result.Has(compat.FeatureNesting) {
		t.Error("nesting should be forced supported")
	}
	if !result.Has(compat.FeatureInlineStyle) {
		t.Error("inline-style should be forced unsupported")
	}
	if !result.Has(compat.FeatureHWB) {
		t.Error("hwb was computed unsupported and not overridden")
	}
}

func TestOverrideMasks_UnknownFeature(t *testing.T) {
	conf := &config.OverridesConfig{ForceSupported: []string{"grid"}}
	if _, _, err := overrideMasks(conf); err == nil {
		t.Error("expected error for unknown feature name")
	}
}
