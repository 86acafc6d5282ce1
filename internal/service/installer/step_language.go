package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// LanguageStep selects the default language mode
type LanguageStep struct {
	choices []string
	cursor  int
}

func NewLanguageStep() Step {
	return &LanguageStep{
		choices: []string{"auto", "english", "urdu"},
	}
}

func (s *LanguageStep) Init() tea.Cmd {
	return nil
}

func (s *LanguageStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars["SULPHITE_DEFAULT_LANGUAGE"] = s.choices[s.cursor]
			return nil, nil
		}
	}
	return s, nil
}

func (s *LanguageStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the default language mode:\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
