// Package classify sorts learner queries into teaching categories by asking
// the hosted model and validating its answer against the curriculum.
package classify

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/curriculum"
	"github.com/softsulphur/sulphite/internal/prompts"
	"github.com/softsulphur/sulphite/pkg/log"
)

type Classifier struct {
	provider core.AIProvider
}

func NewClassifier(provider core.AIProvider) *Classifier {
	return &Classifier{provider: provider}
}

// Classify asks the model to bucket the input. Failures of any kind (call
// error, malformed JSON, unknown category, off-curriculum topic) degrade to
// the zero Classification so the caller falls back to the default prompt.
func (c *Classifier) Classify(ctx context.Context, input string) core.Classification {
	logger := log.FromCtx(ctx)

	raw, err := c.provider.Chat(ctx, prompts.Classification(), input)
	if err != nil {
		logger.Warn().Err(err).Msg("classification call failed")
		return core.Classification{}
	}

	var parsed core.Classification
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		logger.Warn().Err(err).Str("raw", raw).Msg("classification response is not valid JSON")
		return core.Classification{}
	}
	if parsed.IsZero() {
		return core.Classification{}
	}

	if _, ok := core.ParseCategory(string(parsed.Category)); !ok {
		logger.Warn().Str("category", string(parsed.Category)).Msg("unknown classification category")
		return core.Classification{}
	}

	switch parsed.Category {
	case core.CategoryPractical, core.CategoryTheoretical:
		if !curriculum.Validate(parsed.MainTopic, parsed.SubTopic) {
			logger.Warn().
				Str("main_topic", parsed.MainTopic).
				Str("sub_topic", parsed.SubTopic).
				Msg("classification names a topic outside the curriculum")
			return core.Classification{}
		}
	default:
		// Topics are meaningless for general and irrelevant queries.
		parsed.MainTopic = ""
		parsed.SubTopic = ""
	}

	return parsed
}

// stripFences removes a Markdown code fence the model may wrap the JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
