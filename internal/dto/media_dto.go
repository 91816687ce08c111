package dto

type UploadMediaResponse struct {
	FileId   string `json:"file_id"`
	FileType string `json:"file_type"` // image | pdf | docx | audio | video | text
	Message  string `json:"message"`
}

type AnalyzeMediaRequest struct {
	FileId       string `json:"file_id" validate:"required"`
	Question     string `json:"question"`
	Username     string `json:"username" validate:"required"`
	GradeId      uint   `json:"grade_id"`
	SemesterId   uint   `json:"semester_id"`
	DepartmentId uint   `json:"department_id"`
}

type AnalyzeMediaResponse struct {
	Analysis string `json:"analysis"`
	Source   string `json:"source"`
}

type GenerateImageRequest struct {
	Prompt   string `json:"prompt" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type GenerateImageResponse struct {
	ImageUrl string `json:"image_url,omitempty"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}
