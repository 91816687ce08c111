package service

import (
	"context"
	"strings"

	"edubot-be/internal/repository/contract"
	"edubot-be/pkg/knowledge"
	"edubot-be/pkg/resolve"
)

// knowledgeSource adapts the curated QA and curriculum file
// repositories to the resolver's knowledge interface.
type knowledgeSource struct {
	curatedRepo contract.CuratedQARepository
	fileRepo    contract.CurriculumFileRepository
	threshold   float64
}

func NewKnowledgeSource(
	curatedRepo contract.CuratedQARepository,
	fileRepo contract.CurriculumFileRepository,
	threshold float64,
) resolve.Knowledge {
	return &knowledgeSource{
		curatedRepo: curatedRepo,
		fileRepo:    fileRepo,
		threshold:   threshold,
	}
}

func (s *knowledgeSource) Lookup(ctx context.Context, scope resolve.Scope, question string) (*knowledge.Candidate, bool, error) {
	curated, err := s.curatedRepo.FindByScope(ctx, scope.GradeID, scope.SemesterID, scope.DepartmentID)
	if err != nil {
		return nil, false, err
	}

	pairs := make([]knowledge.Pair, 0, len(curated))
	for _, qa := range curated {
		pairs = append(pairs, knowledge.Pair{
			Question: qa.Question,
			Answer:   qa.Answer,
			Keywords: qa.Keywords,
		})
	}

	files, err := s.fileRepo.FindActiveByScope(ctx, scope.GradeID, scope.SemesterID, scope.DepartmentID)
	if err != nil {
		return nil, false, err
	}

	var excerpts []knowledge.Excerpt
	for _, file := range files {
		for _, chunk := range knowledge.ChunkDocument(file.Content) {
			excerpts = append(excerpts, knowledge.Excerpt{
				Text:       chunk,
				UploadedAt: file.UploadedAt,
			})
		}
	}

	candidate, confident := knowledge.BestCandidate(question, pairs, excerpts, s.threshold)
	return candidate, confident, nil
}

// Corpus concatenates the scope's document texts newest first, so
// head-truncation in the prompt keeps the most recent material.
func (s *knowledgeSource) Corpus(ctx context.Context, scope resolve.Scope) (string, error) {
	files, err := s.fileRepo.FindActiveByScope(ctx, scope.GradeID, scope.SemesterID, scope.DepartmentID)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for _, file := range files {
		if file.Content == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(file.Content)
	}
	return builder.String(), nil
}
