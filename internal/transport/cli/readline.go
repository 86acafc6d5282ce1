// Package cli is the interactive terminal transport: a readline loop that
// routes slash commands and feeds everything else to the chat pipeline.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/service/chat"
	"github.com/softsulphur/sulphite/pkg/log"
)

type ReadLine struct {
	cfg    *config.AppConfig
	chat   *chat.Chat
	router core.CmdRouter
	rl     *readline.Instance
}

func NewReadLine(chatSvc *chat.Chat, router core.CmdRouter, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.GetInputHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		chat:   chatSvc,
		router: router,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("terminal chat started, type /help for commands or /quit to leave")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "/quit" {
			return nil
		}

		if out, handled := r.router.Execute(ctx, line); handled {
			fmt.Fprintf(r.rl.Stdout(), "%s\n", out)
			continue
		}

		reply, err := r.chat.Respond(ctx, line)
		if err != nil {
			logger.Error().Err(err).Msg("failed to answer message")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(r.rl.Stdout(), "%s\n", reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
