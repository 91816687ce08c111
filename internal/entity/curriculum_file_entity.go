package entity

import "time"

const (
	CurriculumFileStatusActive  = "active"
	CurriculumFileStatusDeleted = "deleted"
)

// CurriculumFile is an admin-uploaded curriculum document. Content holds
// the extracted text the knowledge lookup and the AI corpus both read.
type CurriculumFile struct {
	ID               uint `gorm:"primaryKey"`
	OriginalFilename string
	FilePath         string
	FileType         string
	FileSize         int64
	Content          string
	GradeID          uint   `gorm:"index:idx_curriculum_scope"`
	SemesterID       uint   `gorm:"index:idx_curriculum_scope"`
	Status           string `gorm:"default:active"`
	UploadedBy       string `gorm:"default:admin"`
	UploadedAt       time.Time
}

// FileDepartment links a curriculum file to the departments it serves.
type FileDepartment struct {
	ID           uint `gorm:"primaryKey"`
	FileID       uint `gorm:"uniqueIndex:idx_file_department;index"`
	DepartmentID uint `gorm:"uniqueIndex:idx_file_department"`
	CreatedAt    time.Time
}
