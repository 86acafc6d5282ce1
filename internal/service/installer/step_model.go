package installer

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type item struct {
	id    string
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.id }

// ModelStep allows selection of the Gemini chat model
type ModelStep struct {
	list list.Model
}

func NewModelStep() Step {
	items := []list.Item{
		item{id: "gemini-2.0-flash", title: "Gemini 2.0 Flash", desc: "Fast and inexpensive, the default"},
		item{id: "gemini-2.5-flash", title: "Gemini 2.5 Flash", desc: "Stronger reasoning, still quick"},
		item{id: "gemini-2.5-pro", title: "Gemini 2.5 Pro", desc: "Best quality, slower and pricier"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select Chat Model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	return &ModelStep{
		list: l,
	}
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	s.list.SetSize(width, height-4)

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		if selected, ok := s.list.SelectedItem().(item); ok {
			state.EnvVars["SULPHITE_CHAT_MODEL"] = selected.id
			return nil, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	return s.list.View()
}
