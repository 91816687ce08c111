package contract

import (
	"context"

	"edubot-be/internal/entity"
)

type CurriculumFileRepository interface {
	Create(ctx context.Context, file *entity.CurriculumFile, departmentIds []uint) error
	FindById(ctx context.Context, id uint) (*entity.CurriculumFile, error)
	// FindActiveByScope returns active files matching the grade/semester
	// whose department links include the given department, newest first.
	FindActiveByScope(ctx context.Context, gradeId, semesterId, departmentId uint) ([]*entity.CurriculumFile, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.CurriculumFile, error)
	MarkDeleted(ctx context.Context, id uint) error
	ListDepartmentIds(ctx context.Context, fileId uint) ([]uint, error)
}
