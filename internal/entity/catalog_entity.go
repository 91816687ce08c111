package entity

import "time"

// Grade is a study year ("الفرقة").
type Grade struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	IsActive    bool `gorm:"default:true"`
	CreatedAt   time.Time
}

// Semester is a study term ("الترم").
type Semester struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	IsActive    bool `gorm:"default:true"`
	CreatedAt   time.Time
}

// Department is a study track ("القسم"), linked to grades many-to-many.
type Department struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	IsActive    bool `gorm:"default:true"`
	CreatedAt   time.Time
}

type DepartmentGrade struct {
	ID           uint `gorm:"primaryKey"`
	DepartmentID uint `gorm:"uniqueIndex:idx_department_grade;index"`
	GradeID      uint `gorm:"uniqueIndex:idx_department_grade;index"`
	CreatedAt    time.Time
}
