package command

import (
	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/service/chat"
	"github.com/softsulphur/sulphite/internal/service/memory"
	"github.com/softsulphur/sulphite/internal/service/state"
)

func NewCommands(
	chatSvc *chat.Chat,
	st *state.State,
	mem *memory.Semantic,
	cfg *config.AppConfig,
) []core.Command {
	return []core.Command{
		NewNewCommand(chatSvc, st, cfg.DefaultSession),
		NewRenameCommand(st),
		NewClearCommand(chatSvc),
		NewNoteCommand(chatSvc),
		NewLanguageCommand(st),
		NewInfoCommand(st, mem),
	}
}
