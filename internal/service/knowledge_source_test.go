package service

import (
	"context"
	"testing"
	"time"

	"edubot-be/internal/entity"
	"edubot-be/pkg/knowledge"
	"edubot-be/pkg/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCuratedRepo struct {
	pairs []*entity.CuratedQA
}

func (f *fakeCuratedRepo) Create(ctx context.Context, qa *entity.CuratedQA) error { return nil }
func (f *fakeCuratedRepo) Update(ctx context.Context, qa *entity.CuratedQA) error { return nil }
func (f *fakeCuratedRepo) Delete(ctx context.Context, id uint) error              { return nil }
func (f *fakeCuratedRepo) FindById(ctx context.Context, id uint) (*entity.CuratedQA, error) {
	return nil, nil
}
func (f *fakeCuratedRepo) FindByScope(ctx context.Context, gradeId, semesterId, departmentId uint) ([]*entity.CuratedQA, error) {
	return f.pairs, nil
}
func (f *fakeCuratedRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.CuratedQA, error) {
	return f.pairs, nil
}

type fakeFileRepo struct {
	files []*entity.CurriculumFile
}

func (f *fakeFileRepo) Create(ctx context.Context, file *entity.CurriculumFile, departmentIds []uint) error {
	return nil
}
func (f *fakeFileRepo) FindById(ctx context.Context, id uint) (*entity.CurriculumFile, error) {
	return nil, nil
}
func (f *fakeFileRepo) FindActiveByScope(ctx context.Context, gradeId, semesterId, departmentId uint) ([]*entity.CurriculumFile, error) {
	return f.files, nil
}
func (f *fakeFileRepo) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.CurriculumFile, error) {
	return f.files, nil
}
func (f *fakeFileRepo) MarkDeleted(ctx context.Context, id uint) error { return nil }
func (f *fakeFileRepo) ListDepartmentIds(ctx context.Context, fileId uint) ([]uint, error) {
	return nil, nil
}

func testResolveScope() resolve.Scope {
	return resolve.Scope{Username: "ahmed", GradeID: 1, SemesterID: 1, DepartmentID: 1}
}

func TestKnowledgeSourceLookupCurated(t *testing.T) {
	curated := &fakeCuratedRepo{pairs: []*entity.CuratedQA{
		{Question: "ما هو قانون نيوتن الأول؟", Answer: "القصور الذاتي"},
	}}
	source := NewKnowledgeSource(curated, &fakeFileRepo{}, 0.6)

	candidate, confident, err := source.Lookup(context.Background(), testResolveScope(), "ما هو قانون نيوتن الأول؟")
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.True(t, confident)
	assert.Equal(t, knowledge.KindCuratedQA, candidate.Kind)
	assert.Equal(t, "القصور الذاتي", candidate.Answer)
}

func TestKnowledgeSourceLookupNotConfident(t *testing.T) {
	curated := &fakeCuratedRepo{pairs: []*entity.CuratedQA{
		{Question: "ما هو قانون نيوتن الأول؟", Answer: "القصور الذاتي"},
	}}
	source := NewKnowledgeSource(curated, &fakeFileRepo{}, 0.6)

	_, confident, err := source.Lookup(context.Background(), testResolveScope(), "كيف تتكاثر النباتات الزهرية؟")
	require.NoError(t, err)
	assert.False(t, confident)
}

func TestKnowledgeSourceCorpusOrder(t *testing.T) {
	files := &fakeFileRepo{files: []*entity.CurriculumFile{
		{Content: "المحتوى الأحدث", UploadedAt: time.Now()},
		{Content: "المحتوى الأقدم", UploadedAt: time.Now().Add(-24 * time.Hour)},
	}}
	source := NewKnowledgeSource(&fakeCuratedRepo{}, files, 0.6)

	corpus, err := source.Corpus(context.Background(), testResolveScope())
	require.NoError(t, err)
	assert.Equal(t, "المحتوى الأحدث\n\nالمحتوى الأقدم", corpus)
}
