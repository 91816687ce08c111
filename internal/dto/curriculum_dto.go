package dto

import "time"

type CreateCuratedQARequest struct {
	GradeId      uint   `json:"grade_id" validate:"required"`
	SemesterId   uint   `json:"semester_id" validate:"required"`
	DepartmentId uint   `json:"department_id" validate:"required"`
	Question     string `json:"question" validate:"required"`
	Answer       string `json:"answer" validate:"required"`
	Keywords     string `json:"keywords"`
}

type CuratedQAResponse struct {
	Id           uint   `json:"id"`
	GradeId      uint   `json:"grade_id"`
	SemesterId   uint   `json:"semester_id"`
	DepartmentId uint   `json:"department_id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Keywords     string `json:"keywords,omitempty"`
}

type CurriculumFileResponse struct {
	Id           uint      `json:"id"`
	Filename     string    `json:"filename"`
	FileType     string    `json:"file_type"`
	FileSize     int64     `json:"file_size"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Status       string    `json:"status"`
	GradeName    string    `json:"grade_name,omitempty"`
	SemesterName string    `json:"semester_name,omitempty"`
	Departments  []string  `json:"departments,omitempty"`
}

type CurriculumFileFilter struct {
	GradeId      uint `query:"grade_id"`
	SemesterId   uint `query:"semester_id"`
	DepartmentId uint `query:"department_id"`
}
