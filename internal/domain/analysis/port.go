package analysis

import "context"

// Completer sends a prompt to a chat completion backend and returns the answer text.
type Completer interface {
	Complete(ctx context.Context, tier Tier, prompt string) (string, error)
}

// Prober checks a screenshot payload.
type Prober interface {
	Probe(payload string) Probe
}

// PromptBuilder assembles the prompt for a description and an optional probe result.
type PromptBuilder interface {
	Build(description string, probe *Probe) string
}
