package contract

import (
	"context"

	"edubot-be/internal/entity"
)

type CuratedQARepository interface {
	Create(ctx context.Context, qa *entity.CuratedQA) error
	Update(ctx context.Context, qa *entity.CuratedQA) error
	Delete(ctx context.Context, id uint) error
	FindById(ctx context.Context, id uint) (*entity.CuratedQA, error)
	// FindByScope returns all pairs for a grade/semester/department triple.
	FindByScope(ctx context.Context, gradeId, semesterId, departmentId uint) ([]*entity.CuratedQA, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.CuratedQA, error)
}
