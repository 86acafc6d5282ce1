package core

import "testing"

func TestParseCategory(t *testing.T) {
	valid := []string{"general", "practical", "theoretical", "irrelevant"}
	for _, s := range valid {
		if _, ok := ParseCategory(s); !ok {
			t.Errorf("expected %q to parse", s)
		}
	}

	invalid := []string{"", "General", "math", "advanced", "practical "}
	for _, s := range invalid {
		if c, ok := ParseCategory(s); ok {
			t.Errorf("expected %q to be rejected, got %q", s, c)
		}
	}
}

func TestParseLanguageMode(t *testing.T) {
	for _, s := range []string{"auto", "english", "urdu"} {
		if _, ok := ParseLanguageMode(s); !ok {
			t.Errorf("expected %q to parse", s)
		}
	}
	if _, ok := ParseLanguageMode("french"); ok {
		t.Error("expected unknown mode to be rejected")
	}
}
