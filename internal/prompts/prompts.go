// Package prompts holds every prompt template the assistant sends to the
// hosted model. Teaching templates are selected through a fixed enumeration
// on the classification category, never through a dynamic lookup.
package prompts

import (
	"fmt"

	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/curriculum"
)

const (
	generalChitchat = `You are a friendly and engaging AI assistant. You excel at casual conversations, making small talk, and keeping the interaction light-hearted and enjoyable. You can discuss a wide range of topics, share interesting facts, and respond to user inputs with humor and warmth. Your goal is to create a pleasant and entertaining experience for the user. Your main purpose is to answer the user questions in a friendly and engaging manner and bring them back to mathematics.`

	defaultSystem = `You are an Adaptive, Socratic, Personalized Learning Assistant for Middle School Students. You adapt your teaching style to the student's learning preferences and pace. You ask thought-provoking questions to stimulate critical thinking and guide the student to discover answers on their own. You provide personalized explanations, examples, and resources based on the student's interests and needs. Your goal is to foster a deep understanding of concepts while making learning engaging and enjoyable.`

	practicalLearning = `You are a Practical Learning Assistant. You focus on problem solving, real-world applications of concepts and provide hands-on examples and exercises. You encourage the student to apply what they learn through projects, experiments, and problem-solving activities. Your goal is to make learning relevant and practical, helping the student see the value of their education in everyday life. You explain and provoke critical thinking through practical scenarios.`

	theoreticalLearning = `You are a Theoretical Learning Assistant. You focus on deep understanding of concepts, theories, and principles. You provide detailed explanations, explore abstract ideas, and encourage the student to think critically about the underlying concepts. You guide the student through complex topics, helping them build a strong foundation of knowledge. Your goal is to foster intellectual curiosity and a love for learning.`

	irrelevantResponse = `The user's input is irrelevant to the current topic of discussion. Politely inform the user that their input does not pertain to the subject at hand and encourage them to stay focused on the topic. Maintain a respectful and understanding tone while guiding the conversation back to the relevant subject matter.`

	identity = `I am Sulphite, your personal mathematics learning assistant. I adapt to how you like to learn, remember what we have worked on together, and help you build a real understanding of middle school mathematics. Ask me anything about numbers, arithmetic, or algebra!`
)

// ForCategory maps a classification category to its teaching template. The
// zero (unclassified) category falls back to the default Socratic prompt.
func ForCategory(c core.Category) string {
	switch c {
	case core.CategoryGeneral:
		return generalChitchat
	case core.CategoryPractical:
		return practicalLearning
	case core.CategoryTheoretical:
		return theoreticalLearning
	case core.CategoryIrrelevant:
		return irrelevantResponse
	default:
		return defaultSystem
	}
}

// Identity answers "who are you?" without a model round trip.
func Identity() string {
	return identity
}

// Classification builds the system instruction for the classifier call,
// embedding the curriculum hierarchy.
func Classification() string {
	return fmt.Sprintf(`Input should focus on only Middle School Mathematics or General Knowledge. Classify the user's input into one of the following categories: 'general', 'practical', 'theoretical', or 'irrelevant'.
If the query is 'practical' or 'theoretical', identify the main topic and sub-topic from the following hierarchy:
%s
If the query contains advanced topics not in the hierarchy, return an empty JSON {}.
Respond with a JSON object with the following format: {"classification": "category", "main_topic": "topic", "sub_topic": "subtopic"}.
For 'general' or 'irrelevant' classifications, the main_topic and sub_topic should be null.

Use the following criteria for classification:

- 'general': Input related to casual conversation, social interaction, or non-specific topics.
- 'practical': Input focused on real-world applications, problem-solving, or hands-on activities of middle school students.
- 'theoretical': Input centered around abstract concepts, theories, or in-depth explanations.
- 'irrelevant': Input that does not pertain to the current topic of discussion or is off-topic.

Respond with only the JSON object without any additional text.`, curriculum.JSON())
}

// LanguageDetection asks the model which language the input is written in.
// The answer is one lowercase word: english, urdu or other.
func LanguageDetection(input string) string {
	return fmt.Sprintf(`Detect the language of the following message. Respond with exactly one lowercase word: 'english' if it is written in English, 'urdu' if it is written in Urdu or Roman Urdu, or 'other' for anything else.

Message: %s`, input)
}

// QueryType asks the model whether the input answers the assistant's last
// question or opens a new one. The answer is 'followup' or 'new_question'.
func QueryType(lastReply, input string) string {
	return fmt.Sprintf(`The assistant previously said:
%s

The user now says:
%s

Is the user answering the assistant's question, or asking something new? Respond with exactly one lowercase word: 'followup' or 'new_question'.`, lastReply, input)
}

// SummarizeNote condenses free-form learner notes into the permanent memory
// field.
func SummarizeNote(note string) string {
	return fmt.Sprintf(`Summarize the following note about a student's learning preferences into one or two short sentences. Keep only information useful for adapting future math tutoring. Respond with the summary only.

Note: %s`, note)
}

// LanguageInstruction is appended to the selected system prompt when a
// language mode is enforced.
func LanguageInstruction(mode core.LanguageMode) string {
	switch mode {
	case core.LanguageEnglish:
		return "\n\nIMPORTANT: You must respond in English."
	case core.LanguageUrdu:
		return "\n\nIMPORTANT: You must respond in Roman Urdu."
	default:
		return ""
	}
}

// LanguageReminder is the fixed reply when the learner writes in a language
// other than the enforced one.
func LanguageReminder(mode core.LanguageMode) string {
	switch mode {
	case core.LanguageEnglish:
		return "Language mode is set to English. Please type in English."
	case core.LanguageUrdu:
		return "Language mode Urdu par set hai. Baraye meharbani Urdu mein likhein."
	default:
		return ""
	}
}
