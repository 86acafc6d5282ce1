// Package curriculum holds the fixed three-level middle-school mathematics
// hierarchy the classifier draws topics from.
package curriculum

import "encoding/json"

var hierarchy = map[string][]string{
	"Numbers and Operations": {
		"Natural Numbers",
		"Whole Numbers",
		"Integers",
		"Rational Numbers and Irrational Numbers",
		"Real Numbers",
	},
	"Arithmetic": {
		"Addition and Subtraction",
		"Multiplication and Division",
		"Order of Operations (PEMDAS)",
		"Factors and Multiples",
		"Prime Numbers and Composite Numbers",
	},
	"Basic Algebra": {
		"Variables and Expressions",
		"Simple Equations and Inequalities",
		"Patterns and Sequences",
		"Coordinate Plane and Graphing",
		"Linear Equations and Systems",
	},
}

// MainTopics returns the top-level topic names.
func MainTopics() []string {
	topics := make([]string, 0, len(hierarchy))
	for t := range hierarchy {
		topics = append(topics, t)
	}
	return topics
}

// SubTopics returns the subtopics of a main topic, or nil if unknown.
func SubTopics(mainTopic string) []string {
	subs, ok := hierarchy[mainTopic]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// Validate reports whether the topic pair is drawn from the hierarchy. An
// empty main topic is valid: general and irrelevant queries carry none.
func Validate(mainTopic, subTopic string) bool {
	if mainTopic == "" {
		return subTopic == ""
	}
	subs, ok := hierarchy[mainTopic]
	if !ok {
		return false
	}
	if subTopic == "" {
		return true
	}
	for _, s := range subs {
		if s == subTopic {
			return true
		}
	}
	return false
}

// JSON renders the hierarchy for embedding into the classification prompt.
func JSON() string {
	b, err := json.MarshalIndent(hierarchy, "", "    ")
	if err != nil {
		// The hierarchy is a static map of strings, this cannot fail.
		panic(err)
	}
	return string(b)
}
