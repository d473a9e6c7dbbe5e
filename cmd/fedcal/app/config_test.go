package app

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/psuedomagi/fedcal/pkg/errors"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies FEDCAL_* variables are read.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("FEDCAL_VERBOSE", "true")
	t.Setenv("FEDCAL_FORMAT", "json")
	t.Setenv("FEDCAL_DATA_PATH", "/srv/fedcal")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if !config.Verbose {
		t.Error("FEDCAL_VERBOSE not loaded")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.DataPath != "/srv/fedcal" {
		t.Errorf("DataPath = %s, want /srv/fedcal", config.DataPath)
	}
}

// TestConfig_File verifies an explicit config file is read.
func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fedcal.yaml")
	content := "format: yaml\nrange_start: \"2000-01-01\"\nrange_end: \"2020-12-31\"\neager_build: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml", config.Format)
	}
	if config.RangeStart != "2000-01-01" || config.RangeEnd != "2020-12-31" {
		t.Errorf("range = %s..%s", config.RangeStart, config.RangeEnd)
	}
	if !config.EagerBuild {
		t.Error("EagerBuild not loaded")
	}
	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %s, want %s", config.ConfigFile, path)
	}
}

// TestConfig_MissingFile verifies an explicit missing file is an error.
func TestConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Errorf("error %T is not a ConfigError", err)
	}
}

// TestConfig_HalfRange verifies range bounds must be set together.
func TestConfig_HalfRange(t *testing.T) {
	config := &Config{RangeStart: "2000-01-01"}
	if err := config.Validate(); err == nil {
		t.Error("Validate() accepted a range without an end")
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", DataPath: "/a"}
	config.UpdateFromFlags(true, false, true, "json", "debug", "")

	if !config.Verbose || !config.NoColor || config.Quiet {
		t.Errorf("bool flags not applied: %+v", config)
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.DataPath != "/a" {
		t.Errorf("DataPath = %s, want /a", config.DataPath)
	}
}
