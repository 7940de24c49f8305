package config

import "testing"

func TestLoadRequiresTokens(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error with no tokens set")
	}

	t.Setenv("DISCORD_TOKEN", "token")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error with no OpenAI key set")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("WEB_BIND", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenAIModel != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, cfg.OpenAIModel)
	}
	if cfg.WebBind != "0.0.0.0:3000" {
		t.Errorf("expected default bind, got %q", cfg.WebBind)
	}
}
