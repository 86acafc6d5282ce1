package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/softsulphur/sulphite/pkg/log"
)

type GeminiConfig struct {
	APIKey     string `env:"SULPHITE_GEMINI_API_KEY,required,notEmpty"`
	ChatModel  string `env:"SULPHITE_CHAT_MODEL" envDefault:"gemini-2.0-flash"`
	EmbedModel string `env:"SULPHITE_EMBED_MODEL" envDefault:"gemini-embedding-001"`
	BaseURL    string `env:"SULPHITE_GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`

	// Provider selects the chat backend: "gemini" or "custom" (any
	// OpenAI-compatible endpoint).
	Provider      string `env:"SULPHITE_LLM_PROVIDER" envDefault:"gemini"`
	CustomBaseURL string `env:"SULPHITE_CUSTOM_BASE_URL"`
	CustomAPIKey  string `env:"SULPHITE_CUSTOM_API_KEY"`
	CustomModel   string `env:"SULPHITE_CUSTOM_MODEL"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
