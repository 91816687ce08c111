package service

import (
	"context"

	"edubot-be/internal/dto"
	"edubot-be/internal/entity"
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/repository/contract"
)

type ICatalogService interface {
	ListGrades(ctx context.Context) ([]dto.CatalogItemResponse, error)
	ListSemesters(ctx context.Context) ([]dto.CatalogItemResponse, error)
	ListDepartments(ctx context.Context, gradeId uint) ([]dto.CatalogItemResponse, error)
	CreateGrade(ctx context.Context, req *dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	CreateSemester(ctx context.Context, req *dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentWithGradesRequest) (*dto.CatalogItemResponse, error)
	LinkDepartmentGrade(ctx context.Context, req *dto.DepartmentGradeLinkRequest) error
	UnlinkDepartmentGrade(ctx context.Context, req *dto.DepartmentGradeLinkRequest) error
}

type catalogService struct {
	catalogRepo contract.CatalogRepository
}

func NewCatalogService(catalogRepo contract.CatalogRepository) ICatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func toCatalogItem(id uint, name, description string) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{Id: id, Name: name, Description: description}
}

func (s *catalogService) ListGrades(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	grades, err := s.catalogRepo.ListGrades(ctx, true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(grades))
	for _, g := range grades {
		items = append(items, toCatalogItem(g.ID, g.Name, g.Description))
	}
	return items, nil
}

func (s *catalogService) ListSemesters(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	semesters, err := s.catalogRepo.ListSemesters(ctx, true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(semesters))
	for _, sem := range semesters {
		items = append(items, toCatalogItem(sem.ID, sem.Name, sem.Description))
	}
	return items, nil
}

// ListDepartments scopes to a grade when one is given, otherwise
// returns the full active list.
func (s *catalogService) ListDepartments(ctx context.Context, gradeId uint) ([]dto.CatalogItemResponse, error) {
	var (
		departments []*entity.Department
		err         error
	)
	if gradeId > 0 {
		departments, err = s.catalogRepo.ListDepartmentsByGrade(ctx, gradeId)
	} else {
		departments, err = s.catalogRepo.ListDepartments(ctx, true)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.CatalogItemResponse, 0, len(departments))
	for _, d := range departments {
		items = append(items, toCatalogItem(d.ID, d.Name, d.Description))
	}
	return items, nil
}

func (s *catalogService) CreateGrade(ctx context.Context, req *dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	grade := &entity.Grade{Name: req.Name, Description: req.Description, IsActive: true}
	if err := s.catalogRepo.CreateGrade(ctx, grade); err != nil {
		return nil, err
	}
	item := toCatalogItem(grade.ID, grade.Name, grade.Description)
	return &item, nil
}

func (s *catalogService) CreateSemester(ctx context.Context, req *dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	semester := &entity.Semester{Name: req.Name, Description: req.Description, IsActive: true}
	if err := s.catalogRepo.CreateSemester(ctx, semester); err != nil {
		return nil, err
	}
	item := toCatalogItem(semester.ID, semester.Name, semester.Description)
	return &item, nil
}

func (s *catalogService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentWithGradesRequest) (*dto.CatalogItemResponse, error) {
	for _, gradeId := range req.GradeIds {
		grade, err := s.catalogRepo.FindGradeById(ctx, gradeId)
		if err != nil {
			return nil, err
		}
		if grade == nil {
			return nil, serverutils.NewNotFoundError("grade not found")
		}
	}

	department := &entity.Department{Name: req.Name, Description: req.Description, IsActive: true}
	if err := s.catalogRepo.CreateDepartment(ctx, department, req.GradeIds); err != nil {
		return nil, err
	}
	item := toCatalogItem(department.ID, department.Name, department.Description)
	return &item, nil
}

func (s *catalogService) LinkDepartmentGrade(ctx context.Context, req *dto.DepartmentGradeLinkRequest) error {
	department, err := s.catalogRepo.FindDepartmentById(ctx, req.DepartmentId)
	if err != nil {
		return err
	}
	if department == nil {
		return serverutils.NewNotFoundError("department not found")
	}
	grade, err := s.catalogRepo.FindGradeById(ctx, req.GradeId)
	if err != nil {
		return err
	}
	if grade == nil {
		return serverutils.NewNotFoundError("grade not found")
	}
	return s.catalogRepo.LinkDepartmentGrade(ctx, req.DepartmentId, req.GradeId)
}

func (s *catalogService) UnlinkDepartmentGrade(ctx context.Context, req *dto.DepartmentGradeLinkRequest) error {
	return s.catalogRepo.UnlinkDepartmentGrade(ctx, req.DepartmentId, req.GradeId)
}
