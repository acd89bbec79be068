package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single message in a completion transcript
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildTranscript expands stored turns into alternating user/assistant messages
// in turn order and appends the new user message last
func BuildTranscript(history []Chat, message string) []ChatMessage {
	transcript := make([]ChatMessage, 0, len(history)*2+1)
	for _, turn := range history {
		transcript = append(transcript,
			ChatMessage{Role: RoleUser, Content: turn.Message},
			ChatMessage{Role: RoleAssistant, Content: turn.Reply},
		)
	}
	return append(transcript, ChatMessage{Role: RoleUser, Content: message})
}
