package implementation

import (
	"context"
	"errors"

	"edubot-be/internal/entity"
	"edubot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CurriculumFileRepositoryImpl struct {
	db *gorm.DB
}

func NewCurriculumFileRepository(db *gorm.DB) contract.CurriculumFileRepository {
	return &CurriculumFileRepositoryImpl{db: db}
}

func (r *CurriculumFileRepositoryImpl) Create(ctx context.Context, file *entity.CurriculumFile, departmentIds []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(file).Error; err != nil {
			return err
		}
		for _, departmentId := range departmentIds {
			link := entity.FileDepartment{FileID: file.ID, DepartmentID: departmentId}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CurriculumFileRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.CurriculumFile, error) {
	var file entity.CurriculumFile
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *CurriculumFileRepositoryImpl) FindActiveByScope(ctx context.Context, gradeId, semesterId, departmentId uint) ([]*entity.CurriculumFile, error) {
	var files []*entity.CurriculumFile
	err := r.db.WithContext(ctx).
		Joins("JOIN file_departments ON file_departments.file_id = curriculum_files.id").
		Where("curriculum_files.grade_id = ? AND curriculum_files.semester_id = ?", gradeId, semesterId).
		Where("file_departments.department_id = ?", departmentId).
		Where("curriculum_files.status = ?", entity.CurriculumFileStatusActive).
		Order("curriculum_files.uploaded_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *CurriculumFileRepositoryImpl) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.CurriculumFile, error) {
	var files []*entity.CurriculumFile
	query := r.db.WithContext(ctx).Order("uploaded_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// MarkDeleted flips the status flag instead of removing the row, so
// conversation history keeps resolving file references.
func (r *CurriculumFileRepositoryImpl) MarkDeleted(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.CurriculumFile{}).
		Where("id = ?", id).
		Update("status", entity.CurriculumFileStatusDeleted).Error
}

func (r *CurriculumFileRepositoryImpl) ListDepartmentIds(ctx context.Context, fileId uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.FileDepartment{}).
		Where("file_id = ?", fileId).
		Pluck("department_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
