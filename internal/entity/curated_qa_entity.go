package entity

import "time"

// CuratedQA is a manually authored question/answer pair scoped to a
// grade/semester/department triple.
type CuratedQA struct {
	ID           uint `gorm:"primaryKey"`
	GradeID      uint `gorm:"index:idx_curated_scope"`
	SemesterID   uint `gorm:"index:idx_curated_scope"`
	DepartmentID uint `gorm:"index:idx_curated_scope"`
	Question     string `gorm:"not null"`
	Answer       string `gorm:"not null"`
	Keywords     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
