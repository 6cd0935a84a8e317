package config

import (
	"errors"
	"testing"
)

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv(EnvIndexBase, "0")
	t.Setenv(EnvStrict, "true")
	t.Setenv(EnvNoLog, "1")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.IndexBase != 0 {
		t.Errorf("IndexBase = %d, want 0", cfg.IndexBase)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.LogEvents {
		t.Error("LogEvents = true, want false")
	}
}

func TestApplyEnv_NoLogFalse(t *testing.T) {
	t.Setenv(EnvNoLog, "false")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if !cfg.LogEvents {
		t.Error("KPART_NO_LOG=false should keep logging on")
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvIndexBase, "one"},
		{EnvIndexBase, "2"},
		{EnvStrict, "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if err := ApplyEnv(Default()); err == nil {
				t.Errorf("ApplyEnv with %s=%s: expected error", tt.key, tt.value)
			}
		})
	}
}

func TestApplyEnv_InvalidBaseIsTyped(t *testing.T) {
	t.Setenv(EnvIndexBase, "5")
	if err := ApplyEnv(Default()); !errors.Is(err, ErrInvalidBase) {
		t.Errorf("err = %v, want ErrInvalidBase", err)
	}
}
