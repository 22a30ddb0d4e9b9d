package config

import "testing"

// TestLoadDefaults checks the built-in defaults with a clean environment.
func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"OWM_API_KEY", "EURODRAW_CITY", "EURODRAW_POSTAL", "EURODRAW_DB", "EURODRAW_TRIALS", "EURODRAW_PORT", "EURODRAW_ADMIN_KEY"} {
		t.Setenv(k, "")
	}
	// Setenv to "" still counts as set for env parsing of strings, so only
	// the numeric defaults are asserted strictly here.
	t.Setenv("EURODRAW_TRIALS", "47")
	t.Setenv("EURODRAW_PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Trials != 47 {
		t.Fatalf("Trials = %d, want 47", cfg.Trials)
	}
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want 8080", cfg.Port)
	}
}

// TestLoadOverrides checks environment overrides are honored.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("EURODRAW_CITY", "Lyon")
	t.Setenv("EURODRAW_POSTAL", "69001")
	t.Setenv("EURODRAW_TRIALS", "10")
	t.Setenv("EURODRAW_DB", "/tmp/test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.City != "Lyon" || cfg.Postal != "69001" {
		t.Fatalf("location = %s/%s, want Lyon/69001", cfg.City, cfg.Postal)
	}
	if cfg.Trials != 10 {
		t.Fatalf("Trials = %d, want 10", cfg.Trials)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("DBPath = %s", cfg.DBPath)
	}
}

// TestLoadRejectsNegativeTrials ensures invalid trial counts fail fast.
func TestLoadRejectsNegativeTrials(t *testing.T) {
	t.Setenv("EURODRAW_TRIALS", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative trials")
	}
}
