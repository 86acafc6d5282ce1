// Package command implements the slash-command surface shared by every
// transport. Bare text is not consumed here and flows on to the chat
// pipeline.
package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/softsulphur/sulphite/internal/core"
)

type Router struct {
	commands  map[string]core.Command
	formatter *ResponseFormatter
}

func New(commands []core.Command) *Router {
	r := &Router{
		commands:  make(map[string]core.Command),
		formatter: NewResponseFormatter(),
	}

	for _, cmd := range commands {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

func (r *Router) Execute(ctx context.Context, input string) (string, bool) {
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	args := parts[1:]

	if name == "help" {
		return r.help(), true
	}

	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Sprintf("Unknown command: /%s. Try /help.", name), true
	}

	result, err := cmd.Execute(ctx, args)
	if err != nil {
		return r.formatter.Error(err), true
	}
	return result, true
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}

func (r *Router) help() string {
	items := make([]string, 0, len(r.commands)+1)
	for _, cmd := range r.ListCommands() {
		items = append(items, fmt.Sprintf("/%s — %s", cmd.Name(), cmd.Description()))
	}
	items = append(items, "/help — Show this list")
	return r.formatter.Combine(
		r.formatter.Info("Commands"),
		r.formatter.List(items),
	)
}
