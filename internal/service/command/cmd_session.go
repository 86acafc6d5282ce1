package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/softsulphur/sulphite/internal/service/chat"
	"github.com/softsulphur/sulphite/internal/service/state"
)

// NewCommand switches to a named session, creating it on first use.
type NewCommand struct {
	chat           *chat.Chat
	state          *state.State
	defaultSession string
	formatter      *ResponseFormatter
}

func NewNewCommand(chatSvc *chat.Chat, st *state.State, defaultSession string) *NewCommand {
	return &NewCommand{
		chat:           chatSvc,
		state:          st,
		defaultSession: defaultSession,
		formatter:      NewResponseFormatter(),
	}
}

func (c *NewCommand) Name() string {
	return "new"
}

func (c *NewCommand) Description() string {
	return "Switch to a session by name, creating it if needed"
}

func (c *NewCommand) Execute(ctx context.Context, args []string) (string, error) {
	name := c.defaultSession
	if len(args) > 0 {
		name = strings.Join(args, " ")
	}

	if err := c.chat.StartSession(ctx, name); err != nil {
		return "", err
	}
	return c.formatter.Success(fmt.Sprintf("Session `%s` is now active.", name)), nil
}

// RenameCommand renames the active session.
type RenameCommand struct {
	state     *state.State
	formatter *ResponseFormatter
}

func NewRenameCommand(st *state.State) *RenameCommand {
	return &RenameCommand{
		state:     st,
		formatter: NewResponseFormatter(),
	}
}

func (c *RenameCommand) Name() string {
	return "rename"
}

func (c *RenameCommand) Description() string {
	return "Rename the active session"
}

func (c *RenameCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Usage("/rename <name>"), nil
	}

	name := strings.Join(args, " ")
	old := c.state.SessionName()
	if err := c.state.RenameSession(ctx, name); err != nil {
		return "", fmt.Errorf("failed to rename session: %w", err)
	}
	return c.formatter.Success(fmt.Sprintf("Session `%s` renamed to `%s`.", old, name)), nil
}
