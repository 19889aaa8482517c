package bot

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	greetingReply = "Greetings! Ready to talk code or coffee?"
	statusReply   = "I'm functioning at 100% capacity, thank you!"
	genericReply  = "That's fascinating. Tell me more!"

	historySeparator = " -> "
)

// ChatResponder answers chat input with fixed keyword replies and keeps
// every input it has seen.
type ChatResponder struct {
	Identity
	Language string

	history History
}

// NewChatResponder creates a ChatResponder with an empty history.
func NewChatResponder(name, version, language string) *ChatResponder {
	return &ChatResponder{
		Identity: NewIdentity(name, version),
		Language: language,
	}
}

// Introduce overrides the default introduction.
func (c *ChatResponder) Introduce() string {
	return fmt.Sprintf("[ChatBot] %s is online. (Type 'back' to exit)", c.Name())
}

// Respond records input and returns the reply for it. The first matching rule wins:
// greeting, status question, history request, then the generic reply.
func (c *ChatResponder) Respond(input string) string {
	c.history.Append(input)

	s := strings.ToLower(input)
	switch {
	case strings.Contains(s, "hello") || hasWord(s, "hi"):
		return greetingReply
	case strings.Contains(s, "how are you"):
		return statusReply
	case strings.Contains(s, "history"):
		return "Log: " + strings.Join(c.history.Entries(), historySeparator)
	default:
		return genericReply
	}
}

// HistoryAt returns the input recorded at index, or NoHistory.
func (c *ChatResponder) HistoryAt(index int) string {
	return c.history.At(index)
}

// HistoryLen returns how many inputs have been recorded.
func (c *ChatResponder) HistoryLen() int {
	return c.history.Len()
}

// hasWord reports whether word appears in s as a standalone token,
// so "hi" does not match "history" or "this".
func hasWord(s, word string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		if f == word {
			return true
		}
	}
	return false
}
