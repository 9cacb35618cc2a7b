package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port got=%s want=8080", cfg.Server.Port)
	}
	if cfg.State.Backend != "memory" {
		t.Fatalf("backend got=%s want=memory", cfg.State.Backend)
	}
	if cfg.AI.Model != "gemini-2.0-flash" || cfg.AI.FallbackModel != "gemini-flash-latest" {
		t.Fatalf("models got=%s/%s", cfg.AI.Model, cfg.AI.FallbackModel)
	}
	if cfg.Pomodoro.WorkMinutes != 25 || cfg.Pomodoro.BreakMinutes != 5 {
		t.Fatalf("pomodoro got=%d/%d want=25/5", cfg.Pomodoro.WorkMinutes, cfg.Pomodoro.BreakMinutes)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
state:
  backend: redis
`)
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port got=%s want=9090", cfg.Server.Port)
	}
	if cfg.State.Backend != "redis" {
		t.Fatalf("backend got=%s want=redis", cfg.State.Backend)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	dir := writeConfig(t, `
state:
  backend: carrier-pigeon
`)
	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("want error for unknown backend")
	}
}

func TestLoadConfigRejectsShortJWTSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
jwt:
  secret: tooshort
`)
	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("want error for short secret in release mode")
	}
}

func TestCredentialsPresent(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want bool
	}{
		{name: "empty", key: "", want: false},
		{name: "whitespace", key: "   ", want: false},
		{name: "placeholder", key: "your_gemini_api_key_here", want: false},
		{name: "real", key: "AIzaSyTest", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := AIConfig{APIKey: tc.key}
			if got := cfg.CredentialsPresent(); got != tc.want {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}
