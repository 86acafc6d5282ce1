package prompts

import (
	"strings"
	"testing"

	"github.com/softsulphur/sulphite/internal/core"
)

func TestForCategory_DistinctTemplates(t *testing.T) {
	categories := []core.Category{
		core.CategoryGeneral,
		core.CategoryPractical,
		core.CategoryTheoretical,
		core.CategoryIrrelevant,
	}

	seen := make(map[string]core.Category)
	for _, c := range categories {
		p := ForCategory(c)
		if p == "" {
			t.Errorf("empty template for %q", c)
		}
		if prev, dup := seen[p]; dup {
			t.Errorf("categories %q and %q share a template", prev, c)
		}
		seen[p] = c
	}
}

func TestForCategory_UnclassifiedFallsBack(t *testing.T) {
	fallback := ForCategory("")
	if fallback == "" {
		t.Fatal("expected default template for zero category")
	}
	for _, c := range []core.Category{core.CategoryGeneral, core.CategoryPractical, core.CategoryTheoretical, core.CategoryIrrelevant} {
		if ForCategory(c) == fallback {
			t.Errorf("default template must differ from %q template", c)
		}
	}
}

func TestClassificationEmbedsHierarchy(t *testing.T) {
	p := Classification()
	for _, topic := range []string{"Numbers and Operations", "Arithmetic", "Basic Algebra"} {
		if !strings.Contains(p, topic) {
			t.Errorf("classification prompt missing topic %q", topic)
		}
	}
}

func TestLanguageReminder(t *testing.T) {
	if LanguageReminder(core.LanguageAuto) != "" {
		t.Error("auto mode must have no reminder")
	}
	if LanguageReminder(core.LanguageEnglish) == "" || LanguageReminder(core.LanguageUrdu) == "" {
		t.Error("enforced modes must have a reminder")
	}
}
