// Package llm abstracts the reasoning-service providers the composition
// pipeline can call. Every provider speaks the same minimal contract: a
// role-tagged message list in, free-form text out. The provider ladder
// depends only on the Provider interface, never on a concrete adapter.
package llm

import "context"

// Provider is a single reasoning-service client.
type Provider interface {
	// Complete sends a completion request and returns the raw response text
	// plus usage metadata.
	Complete(ctx context.Context, req Request) (*Response, error)
	// Name identifies the provider in logs and generation-method tags.
	Name() string
}

// Role tags a message with its conversational role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a conversation sent to a provider.
type Message struct {
	Role    Role
	Content string
}

// Request holds the parameters of one completion call.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	JSONMode    bool
}

// Response is the result of one completion call.
type Response struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}

// SystemUser is a convenience constructor for the common system+user
// message pair used by every pipeline prompt.
func SystemUser(system, user string) []Message {
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}
