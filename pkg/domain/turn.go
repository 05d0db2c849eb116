package domain

// Role tags a chat turn for the completion service
type Role string

// chat roles matching the OpenAI message convention
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a composed exchange
type Turn struct {
	Role    Role
	Content string
}
