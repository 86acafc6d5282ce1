package command

import (
	"context"
	"strings"

	"github.com/softsulphur/sulphite/internal/service/chat"
)

// NoteCommand folds learner-supplied preferences into the permanent note.
type NoteCommand struct {
	chat      *chat.Chat
	formatter *ResponseFormatter
}

func NewNoteCommand(chatSvc *chat.Chat) *NoteCommand {
	return &NoteCommand{
		chat:      chatSvc,
		formatter: NewResponseFormatter(),
	}
}

func (c *NoteCommand) Name() string {
	return "note"
}

func (c *NoteCommand) Description() string {
	return "Tell me something to remember about you"
}

func (c *NoteCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Usage("/note <something about how you like to learn>"), nil
	}

	if err := c.chat.SaveNote(ctx, strings.Join(args, " ")); err != nil {
		return "", err
	}
	return c.formatter.Success("Noted. I will keep that in mind."), nil
}
