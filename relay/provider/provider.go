// Package provider defines the closed set of upstream LLM providers and the
// model-name prefix dispatch that selects one of them.
package provider

import (
	"strings"

	"github.com/Laisky/errors/v2"
)

type Provider int

const (
	OpenAI Provider = iota
	Gemini
	Anthropic
)

// prefix rules are case-sensitive and checked in order; first match wins.
var prefixRules = []struct {
	prefix   string
	provider Provider
}{
	{"gpt-", OpenAI},
	{"gemini-", Gemini},
	{"claude-", Anthropic},
}

// ByModel maps a model identifier to exactly one provider. Only the prefix is
// inspected; the remainder of the model name is forwarded upstream unvalidated.
func ByModel(modelName string) (Provider, error) {
	for _, rule := range prefixRules {
		if strings.HasPrefix(modelName, rule.prefix) {
			return rule.provider, nil
		}
	}
	return 0, errors.Errorf("unsupported model: %s", modelName)
}

func (p Provider) String() string {
	switch p {
	case OpenAI:
		return "openai"
	case Gemini:
		return "gemini"
	case Anthropic:
		return "anthropic"
	default:
		return "unknown"
	}
}

// All enumerates every supported provider, in dispatch order.
func All() []Provider {
	return []Provider{OpenAI, Gemini, Anthropic}
}
