package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	_ = os.Unsetenv("ANALYZER_CONFIG")
	_ = os.Unsetenv("ANALYZER_LOG_LEVEL")
	_ = os.Unsetenv("ANALYZER_DEPTH_PCT")
	_ = os.Unsetenv("ANALYZER_TARGET_QTY")

	c := Load()
	if c.Logging.Level != "info" {
		t.Fatalf("expected default log level info, got %s", c.Logging.Level)
	}
	if c.Analysis.DepthPct != 0.5 {
		t.Fatalf("expected default depth pct 0.5, got %v", c.Analysis.DepthPct)
	}
	if c.Analysis.TargetQty != 40.0 {
		t.Fatalf("expected default target qty 40, got %v", c.Analysis.TargetQty)
	}
	if c.Generator.Levels != 10 || c.Generator.MidPrice != 100.0 {
		t.Fatalf("unexpected generator defaults: %+v", c.Generator)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ANALYZER_LOG_LEVEL", "debug")
	t.Setenv("ANALYZER_DEPTH_PCT", "1.5")
	t.Setenv("ANALYZER_TARGET_QTY", "25")
	t.Setenv("ANALYZER_DATA_DIR", "/var/books")
	c := Load()
	if c.Logging.Level != "debug" {
		t.Fatalf("env override failed for log level, got %s", c.Logging.Level)
	}
	if c.Analysis.DepthPct != 1.5 {
		t.Fatalf("env override failed for depth pct, got %v", c.Analysis.DepthPct)
	}
	if c.Analysis.TargetQty != 25 {
		t.Fatalf("env override failed for target qty, got %v", c.Analysis.TargetQty)
	}
	if c.Server.DataDir != "/var/books" {
		t.Fatalf("env override failed for data dir, got %s", c.Server.DataDir)
	}
}

func TestYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "analysis:\n  depth_pct: 2.0\n  target_qty: 15\nlogging:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ANALYZER_CONFIG", path)
	c := Load()
	if c.Analysis.DepthPct != 2.0 || c.Analysis.TargetQty != 15 {
		t.Fatalf("yaml values not applied: %+v", c.Analysis)
	}
	if c.Logging.Level != "warn" {
		t.Fatalf("yaml log level not applied, got %s", c.Logging.Level)
	}
	// env still wins over yaml
	t.Setenv("ANALYZER_DEPTH_PCT", "3.0")
	c = Load()
	if c.Analysis.DepthPct != 3.0 {
		t.Fatalf("env should override yaml, got %v", c.Analysis.DepthPct)
	}
}
