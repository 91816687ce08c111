package service

import (
	"context"
	"encoding/json"

	"edubot-be/internal/dto"
	"edubot-be/internal/entity"
	"edubot-be/internal/pkg/logger"
	"edubot-be/internal/repository/contract"
	"edubot-be/pkg/chatlog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the conversation topic: every resolved turn
// lands in the database and the student's transcript file. Keeping
// this off the request path means a slow disk never delays a reply.
type consumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	conversationRepo contract.ConversationRepository
	transcripts      *chatlog.Writer
	logger           logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	conversationRepo contract.ConversationRepository,
	transcripts *chatlog.Writer,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		conversationRepo: conversationRepo,
		transcripts:      transcripts,
		logger:           log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ConversationRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal conversation message", map[string]interface{}{"error": err.Error()})
		// Malformed payloads never become valid, drop them.
		msg.Ack()
		return
	}

	var metadata datatypes.JSON
	if len(payload.Metadata) > 0 {
		if raw, err := json.Marshal(payload.Metadata); err == nil {
			metadata = raw
		}
	}

	conversation := &entity.Conversation{
		Username:       payload.Username,
		UserMessage:    payload.UserMessage,
		BotResponse:    payload.BotResponse,
		GradeID:        payload.GradeId,
		SemesterID:     payload.SemesterId,
		DepartmentID:   payload.DepartmentId,
		ResponseSource: payload.ResponseSource,
		Metadata:       metadata,
	}

	if err := cs.conversationRepo.Create(ctx, conversation); err != nil {
		cs.logger.Error("consumer", "failed to persist conversation", map[string]interface{}{
			"username": payload.Username,
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	if err := cs.transcripts.Append(payload.Username, payload.UserMessage, payload.BotResponse, payload.ResponseSource); err != nil {
		// Transcript files are a convenience view; the database row is
		// already safe, so log and move on.
		cs.logger.Warn("consumer", "failed to append chat transcript", map[string]interface{}{
			"username": payload.Username,
			"error":    err.Error(),
		})
	}

	msg.Ack()
}
