package implementation

import (
	"context"
	"time"

	"edubot-be/internal/entity"
	"edubot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{db: db}
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *ConversationRepositoryImpl) FindRecent(ctx context.Context, username, source string, limit, offset int) ([]*entity.Conversation, error) {
	var conversations []*entity.Conversation
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if username != "" {
		query = query.Where("username = ?", username)
	}
	if source != "" {
		query = query.Where("response_source = ?", source)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *ConversationRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Conversation{}).Count(&count).Error
	return count, err
}

func (r *ConversationRepositoryImpl) CountToday(ctx context.Context) (int64, error) {
	var count int64
	startOfDay := time.Now().Truncate(24 * time.Hour)
	err := r.db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Where("created_at >= ?", startOfDay).
		Count(&count).Error
	return count, err
}

func (r *ConversationRepositoryImpl) CountDistinctUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Distinct("username").
		Count(&count).Error
	return count, err
}

func (r *ConversationRepositoryImpl) CountBySource(ctx context.Context) (map[string]int64, error) {
	type row struct {
		ResponseSource string
		Total          int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Select("response_source, COUNT(*) AS total").
		Group("response_source").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.ResponseSource] = rw.Total
	}
	return counts, nil
}
