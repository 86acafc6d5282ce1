package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/pkg/env"
)

// envFile mirrors the env tags of the runtime config structs so the wizard
// output loads back through the same parser.
type envFile struct {
	GeminiAPIKey    string `env:"SULPHITE_GEMINI_API_KEY"`
	ChatModel       string `env:"SULPHITE_CHAT_MODEL"`
	DefaultLanguage string `env:"SULPHITE_DEFAULT_LANGUAGE"`
	EnableTelegram  bool   `env:"SULPHITE_ENABLE_TELEGRAM"`
	TelegramToken   string `env:"SULPHITE_TELEGRAM_TOKEN"`
	TelegramOwnerID int64  `env:"SULPHITE_TELEGRAM_OWNER_ID"`
}

// SaveEnvStep writes the collected configuration to the runtime .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	path := config.GetRuntimePath()

	if err := os.MkdirAll(path, 0755); err != nil {
		s.err = fmt.Errorf("failed to create runtime directory: %w", err)
		return s, nil
	}

	envPath := filepath.Join(path, ".env")
	if _, err := os.Stat(envPath); err == nil {
		s.err = fmt.Errorf(".env file already exists at %s", envPath)
		return s, nil
	}

	ownerID, _ := strconv.ParseInt(state.EnvVars["SULPHITE_TELEGRAM_OWNER_ID"], 10, 64)
	file := &envFile{
		GeminiAPIKey:    state.EnvVars["SULPHITE_GEMINI_API_KEY"],
		ChatModel:       state.EnvVars["SULPHITE_CHAT_MODEL"],
		DefaultLanguage: state.EnvVars["SULPHITE_DEFAULT_LANGUAGE"],
		EnableTelegram:  state.EnvVars["SULPHITE_ENABLE_TELEGRAM"] == "true",
		TelegramToken:   state.EnvVars["SULPHITE_TELEGRAM_TOKEN"],
		TelegramOwnerID: ownerID,
	}

	content, err := env.MarshalEnv(file)
	if err != nil {
		s.err = err
		return s, nil
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}
