package implementation

import (
	"context"
	"errors"

	"edubot-be/internal/entity"
	"edubot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) ListGrades(ctx context.Context, activeOnly bool) ([]*entity.Grade, error) {
	var grades []*entity.Grade
	query := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *CatalogRepositoryImpl) ListSemesters(ctx context.Context, activeOnly bool) ([]*entity.Semester, error) {
	var semesters []*entity.Semester
	query := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&semesters).Error; err != nil {
		return nil, err
	}
	return semesters, nil
}

func (r *CatalogRepositoryImpl) ListDepartments(ctx context.Context, activeOnly bool) ([]*entity.Department, error) {
	var departments []*entity.Department
	query := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *CatalogRepositoryImpl) ListDepartmentsByGrade(ctx context.Context, gradeId uint) ([]*entity.Department, error) {
	var departments []*entity.Department
	err := r.db.WithContext(ctx).
		Joins("JOIN department_grades ON department_grades.department_id = departments.id").
		Where("department_grades.grade_id = ? AND departments.is_active = ?", gradeId, true).
		Order("departments.id ASC").
		Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *CatalogRepositoryImpl) FindGradeById(ctx context.Context, id uint) (*entity.Grade, error) {
	var grade entity.Grade
	if err := r.db.WithContext(ctx).First(&grade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grade, nil
}

func (r *CatalogRepositoryImpl) FindSemesterById(ctx context.Context, id uint) (*entity.Semester, error) {
	var semester entity.Semester
	if err := r.db.WithContext(ctx).First(&semester, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &semester, nil
}

func (r *CatalogRepositoryImpl) FindDepartmentById(ctx context.Context, id uint) (*entity.Department, error) {
	var department entity.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *CatalogRepositoryImpl) CreateGrade(ctx context.Context, grade *entity.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *CatalogRepositoryImpl) CreateSemester(ctx context.Context, semester *entity.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *CatalogRepositoryImpl) CreateDepartment(ctx context.Context, department *entity.Department, gradeIds []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(department).Error; err != nil {
			return err
		}
		for _, gradeId := range gradeIds {
			link := entity.DepartmentGrade{DepartmentID: department.ID, GradeID: gradeId}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CatalogRepositoryImpl) LinkDepartmentGrade(ctx context.Context, departmentId, gradeId uint) error {
	link := entity.DepartmentGrade{DepartmentID: departmentId, GradeID: gradeId}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *CatalogRepositoryImpl) UnlinkDepartmentGrade(ctx context.Context, departmentId, gradeId uint) error {
	return r.db.WithContext(ctx).
		Where("department_id = ? AND grade_id = ?", departmentId, gradeId).
		Delete(&entity.DepartmentGrade{}).Error
}

func (r *CatalogRepositoryImpl) ListDepartmentGrades(ctx context.Context) ([]*entity.DepartmentGrade, error) {
	var links []*entity.DepartmentGrade
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
