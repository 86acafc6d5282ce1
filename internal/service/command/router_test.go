package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/softsulphur/sulphite/internal/core"
)

type fakeCommand struct {
	name   string
	result string
	err    error
	args   []string
	called bool
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "a test command" }

func (f *fakeCommand) Execute(_ context.Context, args []string) (string, error) {
	f.called = true
	f.args = args
	return f.result, f.err
}

func TestRouter_BareTextPassesThrough(t *testing.T) {
	r := New(nil)
	if _, handled := r.Execute(context.Background(), "what is a prime number"); handled {
		t.Error("bare text must not be handled by the router")
	}
}

func TestRouter_DispatchesWithArgs(t *testing.T) {
	cmd := &fakeCommand{name: "rename", result: "done"}
	r := New([]core.Command{cmd})

	out, handled := r.Execute(context.Background(), "/rename my algebra notes")
	if !handled {
		t.Fatal("expected command to be handled")
	}
	if out != "done" {
		t.Errorf("got %q", out)
	}
	if !cmd.called || len(cmd.args) != 3 || cmd.args[0] != "my" {
		t.Errorf("unexpected args %v", cmd.args)
	}
}

func TestRouter_UnknownCommand(t *testing.T) {
	r := New(nil)
	out, handled := r.Execute(context.Background(), "/frobnicate")
	if !handled {
		t.Fatal("unknown commands are still consumed")
	}
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("got %q", out)
	}
}

func TestRouter_CommandErrorFormatted(t *testing.T) {
	cmd := &fakeCommand{name: "clear", err: errors.New("storage unavailable")}
	r := New([]core.Command{cmd})

	out, handled := r.Execute(context.Background(), "/clear")
	if !handled {
		t.Fatal("expected command to be handled")
	}
	if !strings.Contains(out, "storage unavailable") {
		t.Errorf("got %q", out)
	}
}

func TestRouter_HelpListsCommands(t *testing.T) {
	r := New([]core.Command{
		&fakeCommand{name: "note"},
		&fakeCommand{name: "clear"},
	})

	out, handled := r.Execute(context.Background(), "/help")
	if !handled {
		t.Fatal("expected /help to be handled")
	}
	for _, want := range []string{"/clear", "/note", "/help"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %s: %q", want, out)
		}
	}
}
