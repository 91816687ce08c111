package dto

type CatalogItemResponse struct {
	Id          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateCatalogItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CreateDepartmentWithGradesRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	GradeIds    []uint `json:"grade_ids" validate:"required,min=1"`
}

type DepartmentGradeLinkRequest struct {
	DepartmentId uint `json:"department_id" validate:"required"`
	GradeId      uint `json:"grade_id" validate:"required"`
}

type DepartmentGradeResponse struct {
	Id         uint                `json:"id"`
	Department CatalogItemResponse `json:"department"`
	Grade      CatalogItemResponse `json:"grade"`
}
