package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "3000")
	}
	if cfg.Panel.DefaultTimezone != "Asia/Shanghai" {
		t.Errorf("Panel.DefaultTimezone = %q, want %q", cfg.Panel.DefaultTimezone, "Asia/Shanghai")
	}
	if cfg.Panel.Shifts != defaultShifts {
		t.Errorf("Panel.Shifts = %q, want default shifts", cfg.Panel.Shifts)
	}
	if cfg.JWT.Secret != "" {
		t.Errorf("JWT.Secret = %q, want empty", cfg.JWT.Secret)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("PANEL_DEFAULT_TIMEZONE", "Europe/Warsaw")
	t.Setenv("PANEL_SHIFTS", `[{"name":"Morning","start":"06:00","end":"14:00"}]`)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Panel.DefaultTimezone != "Europe/Warsaw" {
		t.Errorf("Panel.DefaultTimezone = %q, want %q", cfg.Panel.DefaultTimezone, "Europe/Warsaw")
	}
	if cfg.Panel.Shifts == defaultShifts {
		t.Errorf("Panel.Shifts should be overridden by PANEL_SHIFTS")
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Errorf("JWT.Secret = %q, want %q", cfg.JWT.Secret, "test-secret")
	}
}
