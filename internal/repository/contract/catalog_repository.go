package contract

import (
	"context"

	"edubot-be/internal/entity"
)

type CatalogRepository interface {
	ListGrades(ctx context.Context, activeOnly bool) ([]*entity.Grade, error)
	ListSemesters(ctx context.Context, activeOnly bool) ([]*entity.Semester, error)
	ListDepartments(ctx context.Context, activeOnly bool) ([]*entity.Department, error)
	// ListDepartmentsByGrade returns departments linked to a grade via
	// the department_grades join table.
	ListDepartmentsByGrade(ctx context.Context, gradeId uint) ([]*entity.Department, error)

	FindGradeById(ctx context.Context, id uint) (*entity.Grade, error)
	FindSemesterById(ctx context.Context, id uint) (*entity.Semester, error)
	FindDepartmentById(ctx context.Context, id uint) (*entity.Department, error)

	CreateGrade(ctx context.Context, grade *entity.Grade) error
	CreateSemester(ctx context.Context, semester *entity.Semester) error
	CreateDepartment(ctx context.Context, department *entity.Department, gradeIds []uint) error

	LinkDepartmentGrade(ctx context.Context, departmentId, gradeId uint) error
	UnlinkDepartmentGrade(ctx context.Context, departmentId, gradeId uint) error
	ListDepartmentGrades(ctx context.Context) ([]*entity.DepartmentGrade, error)
}
