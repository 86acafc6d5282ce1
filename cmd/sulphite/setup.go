package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/providers/llm"
	"github.com/softsulphur/sulphite/internal/providers/rag"
	"github.com/softsulphur/sulphite/internal/service/chat"
	"github.com/softsulphur/sulphite/internal/service/classify"
	"github.com/softsulphur/sulphite/internal/service/command"
	"github.com/softsulphur/sulphite/internal/service/memory"
	"github.com/softsulphur/sulphite/internal/service/state"
	"github.com/softsulphur/sulphite/internal/storage/sqlite"
	"github.com/softsulphur/sulphite/internal/transport/cli"
	"github.com/softsulphur/sulphite/internal/transport/telegram"
	"github.com/softsulphur/sulphite/pkg/log"
	"github.com/softsulphur/sulphite/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	geminiCfg := config.NewGeminiConfig(ctx)

	language, ok := core.ParseLanguageMode(appCfg.DefaultLanguage)
	if !ok {
		logger.Fatal().Str("language", appCfg.DefaultLanguage).Msg("unknown default language mode")
	}

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	sessionsRepo := sqlite.NewSessionsRepo(db)
	turnsRepo := sqlite.NewTurnsRepo(db)
	notesRepo := sqlite.NewNotesRepo(db)

	// 3. AI Provider
	aiProvider, err := llm.NewProvider(ctx, geminiCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Embedder
	embedder, err := rag.NewEmbedder(ctx, geminiCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize embedder")
	}

	// 5. Session state and memory
	st := state.NewState(sessionsRepo, notesRepo, language)
	mem := memory.NewSemantic(embedder, appCfg.RetrievalK)

	// 6. Chat pipeline
	chatSvc := chat.NewChat(
		aiProvider,
		classify.NewClassifier(aiProvider),
		mem,
		turnsRepo,
		st,
		appCfg,
	)
	if err := chatSvc.StartSession(ctx, appCfg.DefaultSession); err != nil {
		logger.Fatal().Err(err).Msg("failed to open default session")
	}

	// 7. Commands
	router := command.New(command.NewCommands(chatSvc, st, mem, appCfg))

	// 8. Transports
	transports, err := initTransports(ctx, appCfg, chatSvc, router, st)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, err
	}
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	chatSvc *chat.Chat,
	router core.CmdRouter,
	st *state.State,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableCLI {
		repl, err := cli.NewReadLine(chatSvc, router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, repl)
	}

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, chatSvc, router, st)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
