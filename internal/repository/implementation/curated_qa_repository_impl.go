package implementation

import (
	"context"
	"errors"

	"edubot-be/internal/entity"
	"edubot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CuratedQARepositoryImpl struct {
	db *gorm.DB
}

func NewCuratedQARepository(db *gorm.DB) contract.CuratedQARepository {
	return &CuratedQARepositoryImpl{db: db}
}

func (r *CuratedQARepositoryImpl) Create(ctx context.Context, qa *entity.CuratedQA) error {
	return r.db.WithContext(ctx).Create(qa).Error
}

func (r *CuratedQARepositoryImpl) Update(ctx context.Context, qa *entity.CuratedQA) error {
	return r.db.WithContext(ctx).Save(qa).Error
}

func (r *CuratedQARepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.CuratedQA{}, id).Error
}

func (r *CuratedQARepositoryImpl) FindById(ctx context.Context, id uint) (*entity.CuratedQA, error) {
	var qa entity.CuratedQA
	if err := r.db.WithContext(ctx).First(&qa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &qa, nil
}

func (r *CuratedQARepositoryImpl) FindByScope(ctx context.Context, gradeId, semesterId, departmentId uint) ([]*entity.CuratedQA, error) {
	var pairs []*entity.CuratedQA
	err := r.db.WithContext(ctx).
		Where("grade_id = ? AND semester_id = ? AND department_id = ?", gradeId, semesterId, departmentId).
		Order("id ASC").
		Find(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

func (r *CuratedQARepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]*entity.CuratedQA, error) {
	var pairs []*entity.CuratedQA
	query := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}
