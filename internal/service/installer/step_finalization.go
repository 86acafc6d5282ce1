package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep computes derived values and final env var formatting
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.EnvVars["SULPHITE_TELEGRAM_TOKEN"] == "" {
		delete(state.EnvVars, "SULPHITE_ENABLE_TELEGRAM")
	}

	if state.EnvVars["SULPHITE_DEFAULT_LANGUAGE"] == "auto" {
		// The default, no need to pin it in the .env
		delete(state.EnvVars, "SULPHITE_DEFAULT_LANGUAGE")
	}

	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
