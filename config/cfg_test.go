package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	if cfg.Resolve.Format != OutputFmtText {
		t.Errorf("Default format = %s, want text", cfg.Resolve.Format)
	}

	if _, ok := cfg.Resolve.Profiles["defaults"]; !ok {
		t.Error("Default configuration carries no \"defaults\" profile")
	}

	// inline-style is user controlled and defaults to unsupported
	found := false
	for _, name := range cfg.Resolve.Overrides.ForceUnsupported {
		if name == "inline-style" {
			found = true
		}
	}
	if !found {
		t.Errorf("Default force_unsupported = %v, want inline-style listed", cfg.Resolve.Overrides.ForceUnsupported)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
resolve:
  format: json
  file_name_transliterate: true
  profiles:
    office:
      - ie=11
      - edge=18
  overrides:
    force_supported: ["nesting"]
    force_unsupported: ["hwb"]
logging:
  console:
    level: normal
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Resolve.Format != OutputFmtJson {
		t.Errorf("Format = %s, want json", cfg.Resolve.Format)
	}

	if !cfg.Resolve.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}

	profile, ok := cfg.Resolve.Profiles["office"]
	if !ok {
		t.Fatal("Expected \"office\" profile from file")
	}
	if len(profile) != 2 || profile[0] != "ie=11" {
		t.Errorf("office profile = %v", profile)
	}

	if len(cfg.Resolve.Overrides.ForceSupported) != 1 || cfg.Resolve.Overrides.ForceSupported[0] != "nesting" {
		t.Errorf("ForceSupported = %v, want [nesting]", cfg.Resolve.Overrides.ForceSupported)
	}

	if cfg.Logging.FileLogger.Level != "debug" {
		t.Errorf("File log level = %s, want debug", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configContent := `version: 1
resolve:
  format: text
  polyfill: always
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown configuration field")
	}
}

func TestLoadConfiguration_BadFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")

	configContent := `version: 1
resolve:
  format: xml
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Fatal("Expected error for unknown output format")
	}
	if !strings.Contains(err.Error(), "not a valid OutputFmt") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty configuration")
	}
}

func TestDump_RoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "dumped.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Failed to write dumped config: %v", err)
	}

	// a dumped configuration must load back cleanly
	back, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() of dumped config error = %v", err)
	}
	if back.Resolve.Format != cfg.Resolve.Format {
		t.Errorf("Format changed in round trip: %s vs %s", back.Resolve.Format, cfg.Resolve.Format)
	}
}

func TestOutputFmt_Ext(t *testing.T) {
	tests := []struct {
		fmt OutputFmt
		ext string
	}{
		{OutputFmtText, ".txt"},
		{OutputFmtJson, ".json"},
		{OutputFmtYaml, ".yaml"},
	}
	for _, tt := range tests {
		if got := tt.fmt.Ext(); got != tt.ext {
			t.Errorf("%s.Ext() = %q, want %q", tt.fmt, got, tt.ext)
		}
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"plain", "plain"},
		{"", "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.out {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
