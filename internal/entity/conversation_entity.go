package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Conversation is one resolved question/answer turn, persisted for the
// admin history and dashboard views. ResponseSource records provenance
// (book, gemini, default, error, cancelled).
type Conversation struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"index"`
	UserMessage    string
	BotResponse    string
	GradeID        uint
	SemesterID     uint
	DepartmentID   uint
	ResponseSource string         `gorm:"index"`
	Metadata       datatypes.JSON // request extras: file id, confirmation flags
	CreatedAt      time.Time      `gorm:"index"`
}
