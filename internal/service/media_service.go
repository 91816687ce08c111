package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"edubot-be/internal/constant"
	"edubot-be/internal/dto"
	"edubot-be/internal/pkg/logger"
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/repository/contract"
	"edubot-be/internal/repository/memory"
	"edubot-be/pkg/ai"
	"edubot-be/pkg/extract"
	"edubot-be/pkg/filestore"
	"edubot-be/pkg/resolve"
)

type IMediaService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadMediaResponse, error)
	Analyze(ctx context.Context, req *dto.AnalyzeMediaRequest) (*dto.AnalyzeMediaResponse, error)
	GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)
}

type mediaService struct {
	fileStore    *filestore.Store
	uploadRepo   *memory.UploadRepository
	extractChain *extract.Chain
	resolver     *resolve.Resolver
	catalogRepo  contract.CatalogRepository
	imageGen     ai.ImageGenerator
	imageDir     string
	maxBytes     int64
	logger       logger.ILogger
}

func NewMediaService(
	fileStore *filestore.Store,
	uploadRepo *memory.UploadRepository,
	extractChain *extract.Chain,
	resolver *resolve.Resolver,
	catalogRepo contract.CatalogRepository,
	imageGen ai.ImageGenerator,
	imageDir string,
	maxBytes int64,
	log logger.ILogger,
) IMediaService {
	return &mediaService{
		fileStore:    fileStore,
		uploadRepo:   uploadRepo,
		extractChain: extractChain,
		resolver:     resolver,
		catalogRepo:  catalogRepo,
		imageGen:     imageGen,
		imageDir:     imageDir,
		maxBytes:     maxBytes,
		logger:       log,
	}
}

// Upload validates the extension and size, persists the file, and
// registers an expiring slot the next question can reference.
func (s *mediaService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadMediaResponse, error) {
	family, ok := extract.FamilyForFilename(fileHeader.Filename)
	if !ok {
		return nil, serverutils.NewValidationError("unsupported file type %q", fileHeader.Filename)
	}
	if fileHeader.Size > s.maxBytes {
		return nil, serverutils.NewValidationError("file exceeds the %d MB limit", s.maxBytes/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	stored, err := s.fileStore.Save(fileHeader.Filename, src)
	if err != nil {
		if errors.Is(err, filestore.ErrTooLarge) {
			return nil, serverutils.NewValidationError("file exceeds the %d MB limit", s.maxBytes/(1024*1024))
		}
		return nil, err
	}

	s.uploadRepo.Save(stored.Id, &memory.StudentUpload{
		FileId:     stored.Id,
		FilePath:   stored.Path,
		FileType:   string(family),
		UploadedAt: time.Now(),
	})

	s.logger.Info("media", "file uploaded", map[string]interface{}{
		"file_id": stored.Id,
		"family":  string(family),
		"size":    stored.Size,
	})

	return &dto.UploadMediaResponse{
		FileId:   stored.Id,
		FileType: string(family),
		Message:  "تم رفع الملف بنجاح",
	}, nil
}

// Analyze extracts text from an uploaded file and answers the student's
// question about it, the extracted text stands in for the curriculum.
// The file is consumed on success, like an attachment on a question.
func (s *mediaService) Analyze(ctx context.Context, req *dto.AnalyzeMediaRequest) (*dto.AnalyzeMediaResponse, error) {
	upload, ok := s.uploadRepo.Get(req.FileId)
	if !ok {
		return nil, serverutils.NewNotFoundError("unknown or expired file id")
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		question = constant.DefaultMediaQuestion(upload.FileType)
	}

	text, err := s.extractChain.Extract(ctx, upload.FilePath)
	if err != nil {
		return nil, err
	}

	scope, err := buildScope(ctx, s.catalogRepo, req.Username, req.GradeId, req.SemesterId, req.DepartmentId)
	if err != nil {
		return nil, err
	}

	result, resolveErr := s.resolver.AnswerWithCorpus(ctx, *scope, question, text)
	if resolveErr != nil {
		s.logger.Error("media", "analysis answer failed", map[string]interface{}{
			"username": req.Username,
			"file_id":  req.FileId,
			"error":    resolveErr.Error(),
		})
	}

	if err := s.fileStore.Remove(upload.FilePath); err != nil {
		s.logger.Warn("media", "failed to remove analyzed upload", map[string]interface{}{
			"file_id": req.FileId,
			"error":   err.Error(),
		})
	}
	s.uploadRepo.Delete(req.FileId)

	return &dto.AnalyzeMediaResponse{
		Analysis: result.AnswerText,
		Source:   result.Source,
	}, nil
}

// GenerateImage produces an image from an Arabic description. Failures
// come back as polite student-facing messages, never as raw errors.
func (s *mediaService) GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	prompt := ai.BuildImagePrompt(req.Prompt)

	data, err := s.imageGen.GenerateImage(ctx, prompt)
	if err != nil {
		s.logger.Error("media", "image generation failed", map[string]interface{}{
			"username": req.Username,
			"error":    err.Error(),
		})
		message := constant.ImageGenerationFailedMessage
		if ai.IsTransient(err) {
			message = constant.ImageGenerationUnavailableMessage
		}
		return &dto.GenerateImageResponse{Message: message, Source: constant.SourceError}, nil
	}

	if err := os.MkdirAll(s.imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	name := uuid.NewString() + ".png"
	if err := os.WriteFile(filepath.Join(s.imageDir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("save generated image: %w", err)
	}

	s.logger.Info("media", "image generated", map[string]interface{}{
		"username": req.Username,
		"file":     name,
		"size":     len(data),
	})

	return &dto.GenerateImageResponse{
		ImageUrl: "/static/generated_images/" + name,
		Message:  constant.ImageGeneratedMessage,
		Source:   constant.SourceImageGeneration,
	}, nil
}
