package config

import (
	"bytes"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("mplcalc", []string{}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Op != "add" {
		t.Errorf("Op = %q, want add", cfg.Op)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if cfg.KaratsubaParallelThreshold == 0 {
		t.Error("KaratsubaParallelThreshold should be filled in by the adaptive estimate")
	}
}

func TestParseConfigFlags(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("mplcalc", []string{"-op", "mul", "-a", "12", "-b", "34", "-base", "16"}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Op != "mul" || cfg.A != "12" || cfg.B != "34" || cfg.Base != 16 {
		t.Errorf("got %+v", cfg)
	}
}

func TestParseConfigRejectsInvalidBase(t *testing.T) {
	var errBuf bytes.Buffer
	if _, err := ParseConfig("mplcalc", []string{"-base", "37"}, &errBuf); err == nil {
		t.Error("expected an error for base 37")
	}
}

func TestEnvOverrideAppliesOnlyWhenFlagUnset(t *testing.T) {
	t.Setenv(EnvPrefix+"OP", "gcd")
	var errBuf bytes.Buffer

	cfg, err := ParseConfig("mplcalc", []string{}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Op != "gcd" {
		t.Errorf("Op = %q, want gcd from env override", cfg.Op)
	}

	cfg, err = ParseConfig("mplcalc", []string{"-op", "sub"}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Op != "sub" {
		t.Errorf("Op = %q, want sub (explicit flag beats env override)", cfg.Op)
	}
}

func TestEstimateOptimalKaratsubaParallelThresholdIsPositive(t *testing.T) {
	if got := EstimateOptimalKaratsubaParallelThreshold(); got <= 0 {
		t.Errorf("threshold = %d, want positive", got)
	}
}
