package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"edubot-be/internal/dto"
	"edubot-be/internal/entity"
	"edubot-be/internal/pkg/logger"
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/repository/contract"
	"edubot-be/pkg/extract"
	"edubot-be/pkg/filestore"
)

type ICurriculumService interface {
	UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, gradeId, semesterId uint, departmentIds []uint) (*dto.CurriculumFileResponse, error)
	ListFiles(ctx context.Context, limit, offset int) ([]dto.CurriculumFileResponse, error)
	DeleteFile(ctx context.Context, id uint) error

	CreateQA(ctx context.Context, req *dto.CreateCuratedQARequest) (*dto.CuratedQAResponse, error)
	UpdateQA(ctx context.Context, id uint, req *dto.CreateCuratedQARequest) (*dto.CuratedQAResponse, error)
	DeleteQA(ctx context.Context, id uint) error
	ListQA(ctx context.Context, limit, offset int) ([]dto.CuratedQAResponse, error)
}

type curriculumService struct {
	fileRepo     contract.CurriculumFileRepository
	curatedRepo  contract.CuratedQARepository
	catalogRepo  contract.CatalogRepository
	fileStore    *filestore.Store
	extractChain *extract.Chain
	logger       logger.ILogger
}

func NewCurriculumService(
	fileRepo contract.CurriculumFileRepository,
	curatedRepo contract.CuratedQARepository,
	catalogRepo contract.CatalogRepository,
	fileStore *filestore.Store,
	extractChain *extract.Chain,
	log logger.ILogger,
) ICurriculumService {
	return &curriculumService{
		fileRepo:     fileRepo,
		curatedRepo:  curatedRepo,
		catalogRepo:  catalogRepo,
		fileStore:    fileStore,
		extractChain: extractChain,
		logger:       log,
	}
}

// UploadFile stores a curriculum document, extracts its text
// synchronously, and scopes it to the given departments. Unlike
// student media, curriculum files stay on disk after extraction.
func (s *curriculumService) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, gradeId, semesterId uint, departmentIds []uint) (*dto.CurriculumFileResponse, error) {
	if len(departmentIds) == 0 {
		return nil, serverutils.NewValidationError("at least one department is required")
	}
	if _, ok := extract.FamilyForFilename(fileHeader.Filename); !ok {
		return nil, serverutils.NewValidationError("unsupported file type %q", fileHeader.Filename)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	stored, err := s.fileStore.Save(fileHeader.Filename, src)
	if err != nil {
		return nil, err
	}

	content, err := s.extractChain.Extract(ctx, stored.Path)
	if err != nil {
		// A curriculum file with no readable text is useless, reject it.
		s.fileStore.Remove(stored.Path)
		return nil, serverutils.NewValidationError("could not extract text from %q", fileHeader.Filename)
	}

	file := &entity.CurriculumFile{
		OriginalFilename: fileHeader.Filename,
		FilePath:         stored.Path,
		FileType:         strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."),
		FileSize:         stored.Size,
		Content:          content,
		GradeID:          gradeId,
		SemesterID:       semesterId,
		Status:           entity.CurriculumFileStatusActive,
		UploadedBy:       "admin",
		UploadedAt:       time.Now(),
	}
	if err := s.fileRepo.Create(ctx, file, departmentIds); err != nil {
		return nil, err
	}

	s.logger.Info("curriculum", "file uploaded", map[string]interface{}{
		"file_id":  file.ID,
		"filename": file.OriginalFilename,
		"chars":    len(content),
	})

	resp := s.toFileResponse(ctx, file)
	return &resp, nil
}

func (s *curriculumService) ListFiles(ctx context.Context, limit, offset int) ([]dto.CurriculumFileResponse, error) {
	files, err := s.fileRepo.FindAll(ctx, entity.CurriculumFileStatusActive, limit, offset)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CurriculumFileResponse, 0, len(files))
	for _, f := range files {
		responses = append(responses, s.toFileResponse(ctx, f))
	}
	return responses, nil
}

func (s *curriculumService) DeleteFile(ctx context.Context, id uint) error {
	file, err := s.fileRepo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if file == nil {
		return serverutils.NewNotFoundError("curriculum file not found")
	}
	if err := s.fileRepo.MarkDeleted(ctx, id); err != nil {
		return err
	}

	// Best effort: the record (and its extracted content) survives even
	// if the physical file is already gone.
	if err := s.fileStore.Remove(file.FilePath); err != nil {
		s.logger.Warn("curriculum", "failed to remove deleted file from disk", map[string]interface{}{
			"file_id": id,
			"error":   err.Error(),
		})
	}
	return nil
}

func (s *curriculumService) toFileResponse(ctx context.Context, file *entity.CurriculumFile) dto.CurriculumFileResponse {
	resp := dto.CurriculumFileResponse{
		Id:         file.ID,
		Filename:   file.OriginalFilename,
		FileType:   file.FileType,
		FileSize:   file.FileSize,
		UploadedAt: file.UploadedAt,
		Status:     file.Status,
	}

	if grade, err := s.catalogRepo.FindGradeById(ctx, file.GradeID); err == nil && grade != nil {
		resp.GradeName = grade.Name
	}
	if semester, err := s.catalogRepo.FindSemesterById(ctx, file.SemesterID); err == nil && semester != nil {
		resp.SemesterName = semester.Name
	}
	if ids, err := s.fileRepo.ListDepartmentIds(ctx, file.ID); err == nil {
		for _, id := range ids {
			if department, err := s.catalogRepo.FindDepartmentById(ctx, id); err == nil && department != nil {
				resp.Departments = append(resp.Departments, department.Name)
			}
		}
	}
	return resp
}

func (s *curriculumService) CreateQA(ctx context.Context, req *dto.CreateCuratedQARequest) (*dto.CuratedQAResponse, error) {
	qa := &entity.CuratedQA{
		GradeID:      req.GradeId,
		SemesterID:   req.SemesterId,
		DepartmentID: req.DepartmentId,
		Question:     req.Question,
		Answer:       req.Answer,
		Keywords:     req.Keywords,
	}
	if err := s.curatedRepo.Create(ctx, qa); err != nil {
		return nil, err
	}
	resp := toQAResponse(qa)
	return &resp, nil
}

func (s *curriculumService) UpdateQA(ctx context.Context, id uint, req *dto.CreateCuratedQARequest) (*dto.CuratedQAResponse, error) {
	qa, err := s.curatedRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if qa == nil {
		return nil, serverutils.NewNotFoundError("curated answer not found")
	}

	qa.GradeID = req.GradeId
	qa.SemesterID = req.SemesterId
	qa.DepartmentID = req.DepartmentId
	qa.Question = req.Question
	qa.Answer = req.Answer
	qa.Keywords = req.Keywords

	if err := s.curatedRepo.Update(ctx, qa); err != nil {
		return nil, err
	}
	resp := toQAResponse(qa)
	return &resp, nil
}

func (s *curriculumService) DeleteQA(ctx context.Context, id uint) error {
	qa, err := s.curatedRepo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if qa == nil {
		return serverutils.NewNotFoundError("curated answer not found")
	}
	return s.curatedRepo.Delete(ctx, id)
}

func (s *curriculumService) ListQA(ctx context.Context, limit, offset int) ([]dto.CuratedQAResponse, error) {
	pairs, err := s.curatedRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CuratedQAResponse, 0, len(pairs))
	for _, qa := range pairs {
		responses = append(responses, toQAResponse(qa))
	}
	return responses, nil
}

func toQAResponse(qa *entity.CuratedQA) dto.CuratedQAResponse {
	return dto.CuratedQAResponse{
		Id:           qa.ID,
		GradeId:      qa.GradeID,
		SemesterId:   qa.SemesterID,
		DepartmentId: qa.DepartmentID,
		Question:     qa.Question,
		Answer:       qa.Answer,
		Keywords:     qa.Keywords,
	}
}
