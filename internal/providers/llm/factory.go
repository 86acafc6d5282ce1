package llm

import (
	"context"
	"fmt"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/pkg/log"
)

// NewProvider creates the chat provider selected by configuration.
func NewProvider(ctx context.Context, cfg *config.GeminiConfig) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.ChatModel).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "gemini":
		return NewGemini(cfg.BaseURL, cfg.APIKey, cfg.ChatModel), nil
	case "custom":
		return NewOpenAICompatible(cfg.CustomBaseURL, cfg.CustomAPIKey, cfg.CustomModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
