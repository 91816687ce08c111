package dto

// AskQuestionRequest is the question-asking call from the thin API layer.
// FileId selects a previously uploaded media file; ConfirmAnswer and
// PendingAnswer carry the second turn of the confirmation protocol.
type AskQuestionRequest struct {
	Username      string `json:"username" validate:"required"`
	Message       string `json:"message"`
	GradeId       uint   `json:"grade_id" validate:"required"`
	SemesterId    uint   `json:"semester_id" validate:"required"`
	DepartmentId  uint   `json:"department_id" validate:"required"`
	FileId        string `json:"file_id,omitempty"`
	ConfirmAnswer string `json:"confirm_answer,omitempty"`
	PendingAnswer string `json:"pending_answer,omitempty"`
}

type AskQuestionResponse struct {
	Response             string `json:"response"`
	Source               string `json:"source"`
	Username             string `json:"username"`
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
	PendingAnswer        string `json:"pending_answer,omitempty"`
	ImageUrl             string `json:"image_url,omitempty"`
}
