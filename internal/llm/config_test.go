package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LINGUALEARN_LLM_PROVIDER",
		"LINGUALEARN_ANTHROPIC_API_KEY", "LINGUALEARN_ANTHROPIC_MODEL",
		"LINGUALEARN_OPENAI_API_KEY", "LINGUALEARN_OPENAI_MODEL", "LINGUALEARN_OPENAI_BASE_URL",
		"LINGUALEARN_GEMINI_API_KEY", "LINGUALEARN_GEMINI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default max attempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("LINGUALEARN_LLM_PROVIDER", "openai")
	t.Setenv("LINGUALEARN_OPENAI_API_KEY", "sk-test")
	t.Setenv("LINGUALEARN_OPENAI_MODEL", "gpt-4o")
	t.Setenv("LINGUALEARN_OPENAI_BASE_URL", "https://openrouter.example/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "https://openrouter.example/v1" {
		t.Errorf("base url = %q", cfg.OpenAI.BaseURL)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with no keys set")
	}

	// Gemini wins when several keys are present.
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("GEMINI_API_KEY", "gk")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery")
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "gk" {
		t.Errorf("discovered config = %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"openai with key", func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "k" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama-at-home" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
