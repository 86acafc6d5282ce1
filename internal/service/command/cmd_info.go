package command

import (
	"context"
	"strconv"

	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/service/memory"
	"github.com/softsulphur/sulphite/internal/service/state"
)

// InfoCommand reports the runtime state of the assistant.
type InfoCommand struct {
	state     *state.State
	memory    *memory.Semantic
	formatter *ResponseFormatter
}

func NewInfoCommand(st *state.State, mem *memory.Semantic) *InfoCommand {
	return &InfoCommand{
		state:     st,
		memory:    mem,
		formatter: NewResponseFormatter(),
	}
}

func (c *InfoCommand) Name() string {
	return "info"
}

func (c *InfoCommand) Description() string {
	return "Show the current session, language and memory size"
}

func (c *InfoCommand) Execute(_ context.Context, _ []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info(core.AppName+" "+core.Version),
		c.formatter.Label("Session", c.state.SessionName()),
		c.formatter.Label("Language", string(c.state.Language())),
		c.formatter.Label("Memory fragments", strconv.Itoa(c.memory.Len())),
	), nil
}
