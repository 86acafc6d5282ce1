package command

import (
	"context"

	"github.com/softsulphur/sulphite/internal/service/chat"
)

// ClearCommand wipes the stored history of the active session.
type ClearCommand struct {
	chat      *chat.Chat
	formatter *ResponseFormatter
}

func NewClearCommand(chatSvc *chat.Chat) *ClearCommand {
	return &ClearCommand{
		chat:      chatSvc,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Erase the memory of the active session"
}

func (c *ClearCommand) Execute(ctx context.Context, _ []string) (string, error) {
	if err := c.chat.ClearMemory(ctx); err != nil {
		return "", err
	}
	return c.formatter.Success("Session memory cleared."), nil
}
