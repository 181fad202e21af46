package config

import "testing"

func TestNormalizeEnv(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "prod", want: "production"},
		{raw: " Production ", want: "production"},
		{raw: "staging", want: "staging"},
		{raw: "local", want: "local"},
		{raw: "dev", want: "dev"},
		{raw: "anything-else", want: "dev"},
		{raw: "", want: "dev"},
	}
	for _, tt := range tests {
		if got := normalizeEnv(tt.raw); got != tt.want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("expected default model gemini-2.5-flash, got %q", cfg.GeminiModel)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected default object store local, got %q", cfg.ObjectStoreType)
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" http://a.example , ,http://b.example")
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("unexpected origins: %#v", got)
	}
}
