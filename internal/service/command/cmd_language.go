package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/service/state"
)

// LanguageCommand shows or changes the enforced language mode.
type LanguageCommand struct {
	state     *state.State
	formatter *ResponseFormatter
}

func NewLanguageCommand(st *state.State) *LanguageCommand {
	return &LanguageCommand{
		state:     st,
		formatter: NewResponseFormatter(),
	}
}

func (c *LanguageCommand) Name() string {
	return "language"
}

func (c *LanguageCommand) Description() string {
	return "Show or set the language mode (auto, english, urdu)"
}

func (c *LanguageCommand) Execute(_ context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Language Mode"),
			c.formatter.Label("Current", string(c.state.Language())),
			c.formatter.Usage("/language <auto|english|urdu>"),
		), nil
	}

	mode, ok := core.ParseLanguageMode(strings.ToLower(args[0]))
	if !ok {
		return "", fmt.Errorf("unknown language mode %q, expected auto, english or urdu", args[0])
	}

	c.state.SetLanguage(mode)
	return c.formatter.Success(fmt.Sprintf("Language mode set to `%s`.", mode)), nil
}
