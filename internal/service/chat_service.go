package service

import (
	"context"
	"encoding/json"
	"strings"

	"edubot-be/internal/constant"
	"edubot-be/internal/dto"
	"edubot-be/internal/pkg/logger"
	"edubot-be/internal/pkg/mailer"
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/repository/contract"
	"edubot-be/internal/repository/memory"
	"edubot-be/pkg/ai"
	"edubot-be/pkg/extract"
	"edubot-be/pkg/filestore"
	"edubot-be/pkg/resolve"
)

type IChatService interface {
	AskQuestion(ctx context.Context, req *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error)
}

type chatService struct {
	resolver     *resolve.Resolver
	catalogRepo  contract.CatalogRepository
	uploadRepo   *memory.UploadRepository
	fileStore    *filestore.Store
	extractChain *extract.Chain
	media        IMediaService
	publisher    IPublisherService
	alertMailer  mailer.IAlertMailer
	logger       logger.ILogger
}

func NewChatService(
	resolver *resolve.Resolver,
	catalogRepo contract.CatalogRepository,
	uploadRepo *memory.UploadRepository,
	fileStore *filestore.Store,
	extractChain *extract.Chain,
	media IMediaService,
	publisher IPublisherService,
	alertMailer mailer.IAlertMailer,
	log logger.ILogger,
) IChatService {
	return &chatService{
		resolver:     resolver,
		catalogRepo:  catalogRepo,
		uploadRepo:   uploadRepo,
		fileStore:    fileStore,
		extractChain: extractChain,
		media:        media,
		publisher:    publisher,
		alertMailer:  alertMailer,
		logger:       log,
	}
}

func (s *chatService) AskQuestion(ctx context.Context, req *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error) {
	scope, err := buildScope(ctx, s.catalogRepo, req.Username, req.GradeId, req.SemesterId, req.DepartmentId)
	if err != nil {
		return nil, err
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		// Second turn of the confirmation protocol, clients echo the
		// yes/no in confirm_answer instead of the message body.
		message = strings.TrimSpace(req.ConfirmAnswer)
	}
	if req.PendingAnswer != "" && !s.resolver.HasPending(req.Username) {
		s.logger.Warn("chat", "stale confirmation echo", map[string]interface{}{
			"username": req.Username,
		})
	}

	metadata := map[string]string{}
	mediaText := ""
	if req.FileId != "" {
		attachedText, fileType, extractErr := s.consumeAttachment(ctx, req.FileId)
		metadata["file_id"] = req.FileId
		if extractErr != nil {
			s.logger.Warn("chat", "attachment extraction failed", map[string]interface{}{
				"username": req.Username,
				"file_id":  req.FileId,
				"error":    extractErr.Error(),
			})
			return s.respond(ctx, req, scope, message, &resolve.Result{
				AnswerText: constant.FileProcessingErrorMessage,
				Source:     constant.SourceError,
			}, metadata, ""), nil
		}
		mediaText = attachedText
		if message == "" {
			message = constant.DefaultMediaQuestion(fileType)
		}
	}

	if message == "" {
		return nil, serverutils.NewValidationError("message or file required")
	}

	// Drawing requests skip the curriculum pipeline entirely. A pending
	// confirmation still wins, the held answer must be settled first.
	if mediaText == "" && !s.resolver.HasPending(req.Username) && ai.IsImageRequest(message) {
		return s.generateImage(ctx, req, scope, message, metadata), nil
	}

	result, resolveErr := s.resolver.Resolve(ctx, *scope, message, mediaText)
	if resolveErr != nil {
		s.logger.Error("chat", "answer resolution failed", map[string]interface{}{
			"username": req.Username,
			"error":    resolveErr.Error(),
		})
		// Alerting must not hold up the student's reply.
		go func(username, question string, cause error) {
			if err := s.alertMailer.SendFallbackAlert(username, question, cause); err != nil {
				s.logger.Warn("chat", "operator alert failed", map[string]interface{}{"error": err.Error()})
			}
		}(req.Username, message, resolveErr)
	}

	return s.respond(ctx, req, scope, message, result, metadata, ""), nil
}

func (s *chatService) generateImage(ctx context.Context, req *dto.AskQuestionRequest, scope *resolve.Scope, message string, metadata map[string]string) *dto.AskQuestionResponse {
	generated, err := s.media.GenerateImage(ctx, &dto.GenerateImageRequest{
		Prompt:   message,
		Username: req.Username,
	})
	if err != nil {
		s.logger.Error("chat", "image generation failed", map[string]interface{}{
			"username": req.Username,
			"error":    err.Error(),
		})
		return s.respond(ctx, req, scope, message, &resolve.Result{
			AnswerText: constant.ImageGenerationFailedMessage,
			Source:     constant.SourceError,
		}, metadata, "")
	}
	return s.respond(ctx, req, scope, message, &resolve.Result{
		AnswerText: generated.Message,
		Source:     generated.Source,
	}, metadata, generated.ImageUrl)
}

// consumeAttachment extracts text from an uploaded file. On success
// the file and its slot are gone; on failure both stay for inspection.
func (s *chatService) consumeAttachment(ctx context.Context, fileId string) (string, string, error) {
	upload, ok := s.uploadRepo.Get(fileId)
	if !ok {
		return "", "", serverutils.NewValidationError("unknown or expired file id %q", fileId)
	}

	text, err := s.extractChain.Extract(ctx, upload.FilePath)
	if err != nil {
		return "", upload.FileType, err
	}

	if err := s.fileStore.Remove(upload.FilePath); err != nil {
		s.logger.Warn("chat", "failed to remove processed upload", map[string]interface{}{
			"file_id": fileId,
			"error":   err.Error(),
		})
	}
	s.uploadRepo.Delete(fileId)

	return text, upload.FileType, nil
}

func (s *chatService) respond(ctx context.Context, req *dto.AskQuestionRequest, scope *resolve.Scope, message string, result *resolve.Result, metadata map[string]string, imageUrl string) *dto.AskQuestionResponse {
	if result.RequiresConfirmation {
		metadata["requires_confirmation"] = "true"
	}
	if imageUrl != "" {
		metadata["image_url"] = imageUrl
	}

	record := dto.ConversationRecordedMessage{
		Username:       req.Username,
		UserMessage:    message,
		BotResponse:    result.AnswerText,
		GradeId:        scope.GradeID,
		SemesterId:     scope.SemesterID,
		DepartmentId:   scope.DepartmentID,
		ResponseSource: result.Source,
		Metadata:       metadata,
	}
	if payload, err := json.Marshal(record); err == nil {
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.logger.Warn("chat", "failed to publish conversation record", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.AskQuestionResponse{
		Response:             result.AnswerText,
		Source:               result.Source,
		Username:             req.Username,
		RequiresConfirmation: result.RequiresConfirmation,
		PendingAnswer:        result.PendingAnswer,
		ImageUrl:             imageUrl,
	}
}
