package service

import (
	"context"

	"edubot-be/internal/constant"
	"edubot-be/internal/repository/contract"
	"edubot-be/pkg/resolve"
)

// buildScope resolves catalog ids to display names. Unknown ids are
// tolerated, the scope falls back to placeholder names so the prompt
// still reads naturally.
func buildScope(ctx context.Context, catalogRepo contract.CatalogRepository, username string, gradeId, semesterId, departmentId uint) (*resolve.Scope, error) {
	scope := &resolve.Scope{
		Username:       username,
		GradeID:        gradeId,
		SemesterID:     semesterId,
		DepartmentID:   departmentId,
		GradeName:      constant.UnknownCatalogName,
		SemesterName:   constant.UnknownCatalogName,
		DepartmentName: constant.UnknownCatalogName,
	}

	if grade, err := catalogRepo.FindGradeById(ctx, gradeId); err != nil {
		return nil, err
	} else if grade != nil {
		scope.GradeName = grade.Name
	}
	if semester, err := catalogRepo.FindSemesterById(ctx, semesterId); err != nil {
		return nil, err
	} else if semester != nil {
		scope.SemesterName = semester.Name
	}
	if department, err := catalogRepo.FindDepartmentById(ctx, departmentId); err != nil {
		return nil, err
	} else if department != nil {
		scope.DepartmentName = department.Name
	}

	return scope, nil
}
