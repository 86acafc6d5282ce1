package env

import (
	"strings"
	"testing"
)

type sampleConfig struct {
	APIKey   string `env:"SULPHITE_GEMINI_API_KEY,required,notEmpty"`
	Model    string `env:"SULPHITE_CHAT_MODEL"`
	OwnerID  int64  `env:"SULPHITE_TELEGRAM_OWNER_ID"`
	Enabled  bool   `env:"SULPHITE_ENABLE_TELEGRAM"`
	internal string `env:"SHOULD_BE_SKIPPED"`
	NoTag    string
}

func TestMarshalEnv(t *testing.T) {
	cfg := &sampleConfig{
		APIKey:  "abc123",
		Model:   "gemini-2.0-flash",
		OwnerID: 42,
		Enabled: true,
	}

	out, err := MarshalEnv(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"SULPHITE_GEMINI_API_KEY=abc123",
		"SULPHITE_CHAT_MODEL=gemini-2.0-flash",
		"SULPHITE_TELEGRAM_OWNER_ID=42",
		"SULPHITE_ENABLE_TELEGRAM=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "SHOULD_BE_SKIPPED") {
		t.Error("unexported field must not be marshalled")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestMarshalEnv_ZeroValuesOmitted(t *testing.T) {
	out, err := MarshalEnv(&sampleConfig{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "SULPHITE_TELEGRAM_OWNER_ID") {
		t.Errorf("zero int must be omitted, got:\n%s", out)
	}
	if strings.Contains(out, "SULPHITE_ENABLE_TELEGRAM") {
		t.Errorf("false bool must be omitted, got:\n%s", out)
	}
}

func TestMarshalEnv_RejectsNonStruct(t *testing.T) {
	if _, err := MarshalEnv("not a struct"); err == nil {
		t.Fatal("expected error for non-struct input")
	}
}
