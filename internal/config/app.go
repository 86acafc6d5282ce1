package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/softsulphur/sulphite/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"SULPHITE_RUNTIME_PATH" envDefault:".sulphite"`

	// Transport flags
	EnableCLI      bool `env:"SULPHITE_ENABLE_CLI" envDefault:"true"`
	EnableTelegram bool `env:"SULPHITE_ENABLE_TELEGRAM" envDefault:"false"`

	// DefaultSession is opened at startup before the learner picks one.
	DefaultSession string `env:"SULPHITE_DEFAULT_SESSION" envDefault:"default"`

	// DefaultLanguage is the language mode at startup (auto, english, urdu).
	DefaultLanguage string `env:"SULPHITE_DEFAULT_LANGUAGE" envDefault:"auto"`

	// MemoryDepth is how many stored turns seed the semantic index when a
	// session is opened.
	MemoryDepth int `env:"SULPHITE_MEMORY_DEPTH" envDefault:"100"`

	// RetrievalK is the number of past fragments retrieved per query.
	RetrievalK int `env:"SULPHITE_RETRIEVAL_K" envDefault:"3"`

	// ContextTokenBudget caps the assembled context string sent to the model.
	ContextTokenBudget int `env:"SULPHITE_CONTEXT_TOKEN_BUDGET" envDefault:"1200"`

	// NoteMaxLen caps /note input before summarization.
	NoteMaxLen int `env:"SULPHITE_NOTE_MAX_LEN" envDefault:"500"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "sulphite.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}
