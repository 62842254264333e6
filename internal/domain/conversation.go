package domain

import "fmt"

// Turn roles. Conversations submitted by callers may only contain user and
// assistant turns; the system role is reserved for prompt assembly.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message in a conversation.
type Turn struct {
	Role    string
	Content string
}

// Conversation is an ordered sequence of turns. The last turn is the new user
// input being answered.
type Conversation []Turn

// Validate checks the conversation shape: non-empty, known roles, and a user
// turn last.
func (c Conversation) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: conversation is empty", ErrInvalidInput)
	}
	for i, t := range c {
		if t.Role != RoleUser && t.Role != RoleAssistant {
			return fmt.Errorf("%w: turn %d has unknown role %q", ErrInvalidInput, i, t.Role)
		}
	}
	if c[len(c)-1].Role != RoleUser {
		return fmt.Errorf("%w: last turn must be from the user", ErrInvalidInput)
	}
	return nil
}

// LastMessage returns the content of the final turn.
func (c Conversation) LastMessage() string {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1].Content
}

// Prior returns all turns except the last one.
func (c Conversation) Prior() []Turn {
	if len(c) == 0 {
		return nil
	}
	return c[:len(c)-1]
}
