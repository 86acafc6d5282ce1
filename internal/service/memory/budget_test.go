package memory

import (
	"strings"
	"testing"
)

func TestTrimToBudget_FitsUnchanged(t *testing.T) {
	text := "line one\nline two"
	if got := TrimToBudget(text, 1000); got != text {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestTrimToBudget_DropsOldestLinesFirst(t *testing.T) {
	lines := []string{
		strings.Repeat("alpha ", 50),
		strings.Repeat("beta ", 50),
		"gamma",
	}
	text := strings.Join(lines, "\n")

	got := TrimToBudget(text, CountTokens("gamma")+5)
	if !strings.Contains(got, "gamma") {
		t.Errorf("expected last line preserved, got %q", got)
	}
	if strings.Contains(got, "alpha") {
		t.Errorf("expected first line dropped, got %q", got)
	}
}

func TestTrimToBudget_ZeroBudgetDisablesTrimming(t *testing.T) {
	text := strings.Repeat("word ", 500)
	if got := TrimToBudget(text, 0); got != text {
		t.Error("zero budget must disable trimming")
	}
}

func TestCountTokens_Monotone(t *testing.T) {
	short := CountTokens("two words")
	long := CountTokens(strings.Repeat("many more words here ", 20))
	if short <= 0 {
		t.Errorf("expected positive count, got %d", short)
	}
	if long <= short {
		t.Errorf("expected longer text to count more tokens: %d vs %d", long, short)
	}
}
