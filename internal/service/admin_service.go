package service

import (
	"context"
	"time"

	"edubot-be/internal/config"
	"edubot-be/internal/dto"
	"edubot-be/internal/pkg/logger"
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/repository/contract"
	"edubot-be/pkg/chatlog"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	History(ctx context.Context, username, source string, limit, offset int) ([]dto.ConversationResponse, error)
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	ListChatLogs(ctx context.Context) ([]dto.ChatLogFileResponse, error)
	ViewChatLog(ctx context.Context, username string) (*dto.ViewChatLogResponse, error)
	Logs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	cfg              *config.AdminConfig
	conversationRepo contract.ConversationRepository
	catalogRepo      contract.CatalogRepository
	transcripts      *chatlog.Writer
	logger           logger.ILogger
}

func NewAdminService(
	cfg *config.AdminConfig,
	conversationRepo contract.ConversationRepository,
	catalogRepo contract.CatalogRepository,
	transcripts *chatlog.Writer,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		cfg:              cfg,
		conversationRepo: conversationRepo,
		catalogRepo:      catalogRepo,
		transcripts:      transcripts,
		logger:           log,
	}
}

func (s *adminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("admin", "failed login attempt", nil)
		return nil, serverutils.NewUnauthorizedError("invalid credentials")
	}

	expiresAt := time.Now().Add(s.cfg.SessionTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *adminService) History(ctx context.Context, username, source string, limit, offset int) ([]dto.ConversationResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	conversations, err := s.conversationRepo.FindRecent(ctx, username, source, limit, offset)
	if err != nil {
		return nil, err
	}

	// Catalog names repeat heavily across a page of history, cache the
	// lookups per request.
	gradeNames := map[uint]string{}
	semesterNames := map[uint]string{}
	departmentNames := map[uint]string{}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		resp := dto.ConversationResponse{
			Username:       c.Username,
			UserMessage:    c.UserMessage,
			BotResponse:    c.BotResponse,
			ResponseSource: c.ResponseSource,
			CreatedAt:      c.CreatedAt,
		}

		if name, ok := gradeNames[c.GradeID]; ok {
			resp.GradeName = name
		} else if grade, err := s.catalogRepo.FindGradeById(ctx, c.GradeID); err == nil && grade != nil {
			gradeNames[c.GradeID] = grade.Name
			resp.GradeName = grade.Name
		}
		if name, ok := semesterNames[c.SemesterID]; ok {
			resp.SemesterName = name
		} else if semester, err := s.catalogRepo.FindSemesterById(ctx, c.SemesterID); err == nil && semester != nil {
			semesterNames[c.SemesterID] = semester.Name
			resp.SemesterName = semester.Name
		}
		if name, ok := departmentNames[c.DepartmentID]; ok {
			resp.DepartmentName = name
		} else if department, err := s.catalogRepo.FindDepartmentById(ctx, c.DepartmentID); err == nil && department != nil {
			departmentNames[c.DepartmentID] = department.Name
			resp.DepartmentName = department.Name
		}

		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *adminService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	total, err := s.conversationRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.conversationRepo.CountDistinctUsers(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.conversationRepo.CountToday(ctx)
	if err != nil {
		return nil, err
	}
	sources, err := s.conversationRepo.CountBySource(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalConversations: total,
		UniqueUsers:        users,
		TodayConversations: today,
		ResponseSources:    sources,
	}, nil
}

func (s *adminService) ListChatLogs(ctx context.Context) ([]dto.ChatLogFileResponse, error) {
	infos, err := s.transcripts.List()
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ChatLogFileResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, dto.ChatLogFileResponse{
			Username: info.Username,
			Filename: info.Filename,
			Size:     info.Size,
			Modified: info.Modified,
		})
	}
	return responses, nil
}

func (s *adminService) ViewChatLog(ctx context.Context, username string) (*dto.ViewChatLogResponse, error) {
	content, err := s.transcripts.Read(username)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, serverutils.NewNotFoundError("no transcript for this user")
	}
	return &dto.ViewChatLogResponse{
		Filename: username + "_chat.txt",
		Content:  content,
	}, nil
}

func (s *adminService) Logs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.logger.GetLogs(level, limit, offset)
}
