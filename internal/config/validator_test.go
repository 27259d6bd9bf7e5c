package config

import (
	"strings"
	"testing"
)

// validConfig returns a config that passes validation, for tests to break
// one field at a time.
func validConfig() *Config {
	return Default()
}

func TestValidateInstance(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:   "default is valid",
			modify: func(c *Config) {},
		},
		{
			name:      "empty name",
			modify:    func(c *Config) { c.Instance.Name = "" },
			wantField: "instance.name",
		},
		{
			name:      "name starts with digit",
			modify:    func(c *Config) { c.Instance.Name = "9lives" },
			wantField: "instance.name",
		},
		{
			name:      "name with slash",
			modify:    func(c *Config) { c.Instance.Name = "my/app" },
			wantField: "instance.name",
		},
		{
			name:   "name with hyphen and underscore",
			modify: func(c *Config) { c.Instance.Name = "my-app_2" },
		},
		{
			name:   "empty group is fine",
			modify: func(c *Config) { c.Instance.Group = "" },
		},
		{
			name:   "plain group",
			modify: func(c *Config) { c.Instance.Group = "work" },
		},
		{
			name:      "group with spaces",
			modify:    func(c *Config) { c.Instance.Group = "my group" },
			wantField: "instance.group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			checkValidation(t, cfg, tt.wantField)
		})
	}
}

func TestValidateListen(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantField string
	}{
		{name: "empty disables", spec: ""},
		{name: "unix path", spec: "unix:/tmp/extra.sock"},
		{name: "abstract", spec: "unix:@extra"},
		{name: "tcp", spec: "tcp:localhost:9000"},
		{name: "unknown protocol", spec: "udp:localhost:9000", wantField: "listen.spec"},
		{name: "missing port", spec: "tcp:localhost", wantField: "listen.spec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Listen.Spec = tt.spec
			checkValidation(t, cfg, tt.wantField)
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantField string
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "error"},
		{name: "uppercase accepted", level: "INFO"},
		{name: "mixed case accepted", level: "Warn"},
		{name: "empty allowed", level: ""},
		{name: "bogus", level: "verbose", wantField: "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			checkValidation(t, cfg, tt.wantField)
		})
	}
}

func TestValidateShell(t *testing.T) {
	cfg := validConfig()
	cfg.Shell.EnvTimeoutMs = -1
	checkValidation(t, cfg, "shell.env_timeout_ms")
}

func TestValidationErrorsMessage(t *testing.T) {
	cfg := validConfig()
	cfg.Instance.Name = ""
	cfg.Logging.Level = "loud"

	errs := cfg.Validate()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), ValidationErrors(errs))
	}

	msg := ValidationErrors(errs).Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("multi-error message missing count: %q", msg)
	}
	if !strings.Contains(msg, "instance.name") || !strings.Contains(msg, "logging.level") {
		t.Errorf("message missing field paths: %q", msg)
	}

	single := ValidationErrors(errs[:1]).Error()
	if strings.Contains(single, "validation errors") {
		t.Errorf("single error should not carry a count header: %q", single)
	}
}

// checkValidation asserts that cfg validates cleanly, or that exactly the
// named field is reported.
func checkValidation(t *testing.T, cfg *Config, wantField string) {
	t.Helper()
	errs := cfg.Validate()
	if wantField == "" {
		if len(errs) > 0 {
			t.Errorf("Validate() = %v, want no errors", ValidationErrors(errs))
		}
		return
	}
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1 for %s: %v", len(errs), wantField, ValidationErrors(errs))
	}
	if errs[0].Field != wantField {
		t.Errorf("Validate() flagged %q, want %q", errs[0].Field, wantField)
	}
}
