package dto

// ConversationRecordedMessage travels over the in-process pubsub from
// the chat pipeline to the persistence consumer.
type ConversationRecordedMessage struct {
	Username       string            `json:"username"`
	UserMessage    string            `json:"user_message"`
	BotResponse    string            `json:"bot_response"`
	GradeId        uint              `json:"grade_id"`
	SemesterId     uint              `json:"semester_id"`
	DepartmentId   uint              `json:"department_id"`
	ResponseSource string            `json:"response_source"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}
