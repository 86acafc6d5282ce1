package core

import "time"

const (
	AppName = "Sulphite"
	Version = "2.0.0"
)

// Category is a teaching-style bucket the classifier sorts queries into.
// The set is closed: anything else coming back from the model is treated
// as unclassifiable.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryPractical   Category = "practical"
	CategoryTheoretical Category = "theoretical"
	CategoryIrrelevant  Category = "irrelevant"
)

// ParseCategory reports whether s names one of the four fixed categories.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryGeneral, CategoryPractical, CategoryTheoretical, CategoryIrrelevant:
		return Category(s), true
	}
	return "", false
}

// Classification is the result of classifying one learner query. The zero
// value means "unclassified" and callers fall back to the default prompt.
type Classification struct {
	Category  Category `json:"classification"`
	MainTopic string   `json:"main_topic,omitempty"`
	SubTopic  string   `json:"sub_topic,omitempty"`
}

func (c Classification) IsZero() bool {
	return c.Category == ""
}

// LanguageMode restricts which language the learner may write in.
type LanguageMode string

const (
	LanguageAuto    LanguageMode = "auto"
	LanguageEnglish LanguageMode = "english"
	LanguageUrdu    LanguageMode = "urdu"
)

func ParseLanguageMode(s string) (LanguageMode, bool) {
	switch LanguageMode(s) {
	case LanguageAuto, LanguageEnglish, LanguageUrdu:
		return LanguageMode(s), true
	}
	return "", false
}

// Session is a named conversation thread. Created on first reference to a
// name and never destroyed by the application itself.
type Session struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Turn is one (user message, assistant response) pair. Immutable once
// written.
type Turn struct {
	ID            int64
	SessionID     int64
	UserInput     string
	ModelResponse string
	CreatedAt     time.Time
}
