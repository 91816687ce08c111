package dto

import "time"

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ConversationResponse struct {
	Username       string    `json:"username"`
	UserMessage    string    `json:"user_message"`
	BotResponse    string    `json:"bot_response"`
	ResponseSource string    `json:"response_source"`
	CreatedAt      time.Time `json:"created_at"`
	GradeName      string    `json:"grade_name,omitempty"`
	SemesterName   string    `json:"semester_name,omitempty"`
	DepartmentName string    `json:"department_name,omitempty"`
}

type DashboardStatsResponse struct {
	TotalConversations int64            `json:"total_conversations"`
	UniqueUsers        int64            `json:"unique_users"`
	TodayConversations int64            `json:"today_conversations"`
	ResponseSources    map[string]int64 `json:"response_sources"`
}

type ChatLogFileResponse struct {
	Username string    `json:"username"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

type ViewChatLogRequest struct {
	Filename string `json:"filename" validate:"required"`
}

type ViewChatLogResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
