// Package telegram is the optional Telegram transport. It is owner-gated
// and keeps one session per chat.
package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/service/chat"
	"github.com/softsulphur/sulphite/internal/service/state"
	"github.com/softsulphur/sulphite/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	chat    *chat.Chat
	router  core.CmdRouter
	state   *state.State
	sender  *sender
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	chatSvc *chat.Chat,
	router core.CmdRouter,
	st *state.State,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		chat:    chatSvc,
		router:  router,
		state:   st,
		sender:  newSender(b),
		ownerID: cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	// Each chat gets its own session, reopened only when another transport
	// moved the state elsewhere.
	sessionName := fmt.Sprintf("telegram-%d", c.Chat().ID)
	if b.state.SessionName() != sessionName {
		if err := b.chat.StartSession(ctx, sessionName); err != nil {
			logger.Error().Err(err).Str("session", sessionName).Msg("failed to open telegram session")
			return c.Send(fmt.Sprintf("error: %v", err))
		}
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	if out, handled := b.router.Execute(ctx, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), out)
	}

	reply, err := b.chat.Respond(ctx, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("failed to answer message")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), reply)
}
