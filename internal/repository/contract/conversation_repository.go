package contract

import (
	"context"

	"edubot-be/internal/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	// FindRecent lists conversations newest first. Empty username or
	// source skips that filter.
	FindRecent(ctx context.Context, username, source string, limit, offset int) ([]*entity.Conversation, error)
	CountAll(ctx context.Context) (int64, error)
	CountToday(ctx context.Context) (int64, error)
	CountDistinctUsers(ctx context.Context) (int64, error)
	CountBySource(ctx context.Context) (map[string]int64, error)
}
