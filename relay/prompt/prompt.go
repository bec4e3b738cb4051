// Package prompt builds the fixed system prompt attached to every upstream
// request. The template is a static constant; the only variable component is
// the verbatim workspace context supplied by the plugin.
package prompt

import (
	"fmt"
	"strings"
)

// NoContextPlaceholder is inserted when the plugin sends no workspace context.
const NoContextPlaceholder = "No context provided."

const systemPromptTemplate = `You are an expert Roblox Studio assistant embedded in a Studio plugin. You help developers write and debug Luau scripts, build and organize instances, and answer questions about the Roblox engine API.

When replying with code, always wrap Luau code in fenced code blocks tagged with lua (` + "```lua" + `) so the plugin can render and insert them. Keep prose concise and actionable; prefer complete, runnable scripts over fragments.

Current workspace context:
%s`

// BuildSystemPrompt renders the system prompt with the given workspace
// context. The context is inserted verbatim; no escaping is applied beyond
// what the provider wire format requires downstream.
func BuildSystemPrompt(workspaceContext string) string {
	if strings.TrimSpace(workspaceContext) == "" {
		workspaceContext = NoContextPlaceholder
	}
	return fmt.Sprintf(systemPromptTemplate, workspaceContext)
}
