package chat

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Rule maps a keyword to a canned reply. Rules are checked in order, first
// match wins.
type Rule struct {
	Keyword string `yaml:"keyword"`
	Reply   string `yaml:"reply"`
}

// Responder generates bot replies: keyword rules first, then a random pick
// from the generic pool.
type Responder struct {
	rules   []Rule
	generic []string
	pick    func(n int) int
}

// NewResponder creates a responder with the built-in rules and replies.
func NewResponder() *Responder {
	return &Responder{
		rules:   defaultRules(),
		generic: defaultGeneric(),
		pick:    rand.IntN,
	}
}

// repliesFile is the YAML shape for an external reply set.
type repliesFile struct {
	Rules   []Rule   `yaml:"rules"`
	Generic []string `yaml:"generic"`
}

// LoadRules replaces the responder's rule set from a YAML file. Either
// section may be omitted to keep the built-ins.
func (r *Responder) LoadRules(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("chat: read replies file: %w", err)
	}

	var parsed repliesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("chat: parse replies file: %w", err)
	}
	if len(parsed.Rules) > 0 {
		r.rules = parsed.Rules
	}
	if len(parsed.Generic) > 0 {
		r.generic = parsed.Generic
	}
	return nil
}

// Reply produces the bot's answer to a user message.
func (r *Responder) Reply(userMessage string) string {
	lower := strings.ToLower(userMessage)
	for _, rule := range r.rules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Reply
		}
	}
	return r.generic[r.pick(len(r.generic))]
}

func defaultRules() []Rule {
	return []Rule{
		{Keyword: "hello", Reply: "Hi there! How can I help you?"},
		{Keyword: "help", Reply: "Sure! What do you need assistance with?"},
		{Keyword: "thanks", Reply: "You're welcome! Let me know if you have more questions."},
		{Keyword: "problem", Reply: "I'm sorry to hear that. Can you tell me more about the problem?"},
		{Keyword: "issue", Reply: "Let's see how we can resolve that issue together."},
	}
}

func defaultGeneric() []string {
	return []string{
		"Hello! How can I assist you today?",
		"I'm here to help! What do you need?",
		"Can you please provide more details?",
		"Thank you for reaching out!",
		"I'm glad to assist you with that.",
		"Let me check that for you.",
		"Could you clarify your question?",
		"I'm here to support you!",
		"What else can I do for you?",
		"Feel free to ask me anything!",
	}
}
