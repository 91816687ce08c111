package resolve

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"edubot-be/internal/constant"
	"edubot-be/pkg/ai"
	"edubot-be/pkg/knowledge"
)

type fakeKnowledge struct {
	candidate *knowledge.Candidate
	confident bool
	corpus    string
	err       error
}

func (f *fakeKnowledge) Lookup(ctx context.Context, scope Scope, question string) (*knowledge.Candidate, bool, error) {
	return f.candidate, f.confident, f.err
}

func (f *fakeKnowledge) Corpus(ctx context.Context, scope Scope) (string, error) {
	return f.corpus, nil
}

type fakeGenerator struct {
	answers []string
	errs    []error
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, userPrompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.answers) {
		return f.answers[i], nil
	}
	return f.answers[len(f.answers)-1], nil
}

type memPending struct {
	mu    sync.Mutex
	slots map[string][2]string
}

func newMemPending() *memPending {
	return &memPending{slots: make(map[string][2]string)}
}

func (p *memPending) Save(username, question, answer string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[username] = [2]string{question, answer}
}

func (p *memPending) Get(username string) (string, string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.slots[username]
	return s[0], s[1], ok
}

func (p *memPending) Delete(username string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.slots, username)
}

func testPolicy() ai.RetryPolicy {
	return ai.RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   1.5,
		MaxDelay:     5 * time.Millisecond,
		Budget:       time.Second,
	}
}

func testScope() Scope {
	return Scope{
		Username:       "ahmed",
		GradeID:        1,
		SemesterID:     1,
		DepartmentID:   2,
		GradeName:      "الفرقة الأولى",
		SemesterName:   "الترم الأول",
		DepartmentName: "الفيزياء",
	}
}

func TestResolveConfidentKnowledgeMatch(t *testing.T) {
	kn := &fakeKnowledge{
		candidate: &knowledge.Candidate{Answer: "إجابة من الكتاب", Kind: knowledge.KindCuratedQA, Score: 0.9},
		confident: true,
	}
	gen := &fakeGenerator{answers: []string{"should not be called"}}
	r := NewResolver(kn, gen, newMemPending(), testPolicy(), 1000)

	result, err := r.Resolve(context.Background(), testScope(), "ما هو قانون نيوتن؟", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != constant.SourceBook {
		t.Errorf("source = %q, want %q", result.Source, constant.SourceBook)
	}
	if result.AnswerText != "إجابة من الكتاب" {
		t.Errorf("answer = %q", result.AnswerText)
	}
	if gen.calls != 0 {
		t.Error("confident knowledge match must not call the generator")
	}
}

func TestResolveFallbackToAI(t *testing.T) {
	kn := &fakeKnowledge{confident: false, corpus: "محتوى المنهج"}
	gen := &fakeGenerator{answers: []string{"إجابة من النموذج"}}
	r := NewResolver(kn, gen, newMemPending(), testPolicy(), 1000)

	result, err := r.Resolve(context.Background(), testScope(), "سؤال صعب", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != constant.SourceGemini {
		t.Errorf("source = %q, want %q", result.Source, constant.SourceGemini)
	}
	if result.AnswerText != "إجابة من النموذج" {
		t.Errorf("answer = %q", result.AnswerText)
	}
	if result.RequiresConfirmation {
		t.Error("confident model answer needs no confirmation")
	}
}

func TestResolveUncertainAnswerDefersThenConfirms(t *testing.T) {
	kn := &fakeKnowledge{confident: false}
	gen := &fakeGenerator{answers: []string{constant.UncertaintyMarker + " إجابة غير مؤكدة"}}
	pending := newMemPending()
	r := NewResolver(kn, gen, pending, testPolicy(), 1000)

	result, err := r.Resolve(context.Background(), testScope(), "سؤال غامض", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.RequiresConfirmation {
		t.Fatal("uncertain answer must require confirmation")
	}
	if result.AnswerText != constant.ConfirmationPrompt {
		t.Errorf("answer = %q, want the confirmation prompt", result.AnswerText)
	}
	if result.PendingAnswer != "إجابة غير مؤكدة" {
		t.Errorf("pending = %q, marker should be stripped", result.PendingAnswer)
	}

	// Second turn: the student says yes.
	result, err = r.Resolve(context.Background(), testScope(), "نعم", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != constant.SourceGemini {
		t.Errorf("source = %q", result.Source)
	}
	if result.AnswerText != "إجابة غير مؤكدة" {
		t.Errorf("answer = %q, want the held answer", result.AnswerText)
	}
	if _, _, ok := pending.Get("ahmed"); ok {
		t.Error("confirmation must clear the pending slot")
	}
}

func TestResolveAnythingElseCancelsPending(t *testing.T) {
	kn := &fakeKnowledge{confident: false}
	gen := &fakeGenerator{answers: []string{constant.UncertaintyMarker + " إجابة"}}
	pending := newMemPending()
	r := NewResolver(kn, gen, pending, testPolicy(), 1000)

	if _, err := r.Resolve(context.Background(), testScope(), "سؤال", ""); err != nil {
		t.Fatal(err)
	}

	result, err := r.Resolve(context.Background(), testScope(), "لا شكراً", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != constant.SourceCancelled {
		t.Errorf("source = %q, want %q", result.Source, constant.SourceCancelled)
	}
	if result.AnswerText != constant.CancelledAnswerMessage {
		t.Errorf("answer = %q", result.AnswerText)
	}
	if _, _, ok := pending.Get("ahmed"); ok {
		t.Error("cancellation must clear the pending slot")
	}
}

func TestResolvePendingIsolatedPerUser(t *testing.T) {
	kn := &fakeKnowledge{confident: false}
	gen := &fakeGenerator{answers: []string{
		constant.UncertaintyMarker + " إجابة لأحمد",
		"إجابة عادية لسارة",
	}}
	pending := newMemPending()
	r := NewResolver(kn, gen, pending, testPolicy(), 1000)

	ahmed := testScope()
	sara := testScope()
	sara.Username = "sara"

	if _, err := r.Resolve(context.Background(), ahmed, "سؤال أحمد", ""); err != nil {
		t.Fatal(err)
	}

	// Sara saying yes must not release Ahmed's held answer.
	result, err := r.Resolve(context.Background(), sara, "نعم", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AnswerText == "إجابة لأحمد" {
		t.Fatal("pending answers leaked across users")
	}
	if _, _, ok := pending.Get("ahmed"); !ok {
		t.Error("ahmed's pending slot must survive sara's turn")
	}
}

func TestResolveRefusalGetsDefaultAnswer(t *testing.T) {
	kn := &fakeKnowledge{confident: false}
	gen := &fakeGenerator{answers: []string{"عذراً، " + constant.RefusalPhrases[0]}}
	r := NewResolver(kn, gen, newMemPending(), testPolicy(), 1000)

	result, err := r.Resolve(context.Background(), testScope(), "سؤال خارج المنهج", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != constant.SourceDefault {
		t.Errorf("source = %q, want %q", result.Source, constant.SourceDefault)
	}
	if result.AnswerText != constant.DefaultAnswerMessage("الفيزياء") {
		t.Errorf("answer = %q", result.AnswerText)
	}
}

func TestResolveRetriesTransientThenSucceeds(t *testing.T) {
	kn := &fakeKnowledge{confident: false}
	gen := &fakeGenerator{
		errs:    []error{errors.New("503 unavailable"), errors.New("503 unavailable")},
		answers: []string{"", "", "إجابة بعد المحاولات"},
	}
	r := NewResolver(kn, gen, newMemPending(), testPolicy(), 1000)

	result, err := r.Resolve(context.Background(), testScope(), "سؤال", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 3 {
		t.Errorf("generator calls = %d, want 3", gen.calls)
	}
	if result.AnswerText != "إجابة بعد المحاولات" {
		t.Errorf("answer = %q", result.AnswerText)
	}
}

func TestResolveExhaustedRetriesYieldErrorResult(t *testing.T) {
	kn := &fakeKnowledge{confident: false}
	gen := &fakeGenerator{
		errs: []error{
			errors.New("503 unavailable"),
			errors.New("503 unavailable"),
			errors.New("503 unavailable"),
		},
		answers: []string{"", "", ""},
	}
	r := NewResolver(kn, gen, newMemPending(), testPolicy(), 1000)

	result, err := r.Resolve(context.Background(), testScope(), "سؤال", "")
	if err == nil {
		t.Fatal("exhausted retries must surface an error for alerting")
	}
	if result == nil || result.Source != constant.SourceError {
		t.Fatalf("result = %+v, want an error-source reply", result)
	}
	if result.AnswerText != constant.FallbackErrorMessage {
		t.Errorf("answer = %q", result.AnswerText)
	}
}

func TestResolveMediaTextBecomesCorpus(t *testing.T) {
	kn := &fakeKnowledge{confident: false, corpus: "محتوى المنهج المخزن"}
	gen := &fakeGenerator{answers: []string{"إجابة عن المرفق"}}
	r := NewResolver(kn, gen, newMemPending(), testPolicy(), 1000)

	result, err := r.Resolve(context.Background(), testScope(), "ما المكتوب في الصورة؟", "النص المستخرج من الصورة")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != constant.SourceGemini {
		t.Errorf("source = %q", result.Source)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("generator calls = %d, want 1", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "النص المستخرج من الصورة") {
		t.Error("prompt must carry the extracted media text as the corpus")
	}
	if strings.Contains(gen.prompts[0], "محتوى المنهج المخزن") {
		t.Error("media text replaces the stored curriculum corpus")
	}
	if !strings.Contains(gen.prompts[0], "ما المكتوب في الصورة؟") {
		t.Error("prompt must keep the question separate from the corpus")
	}
}

func TestAnswerWithCorpusLeavesPendingAlone(t *testing.T) {
	kn := &fakeKnowledge{confident: false}
	gen := &fakeGenerator{answers: []string{
		constant.UncertaintyMarker + " إجابة معلقة",
		"تحليل المستند",
	}}
	pending := newMemPending()
	r := NewResolver(kn, gen, pending, testPolicy(), 1000)

	// Park an answer in the slot first.
	if _, err := r.Resolve(context.Background(), testScope(), "سؤال غامض", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := pending.Get("ahmed"); !ok {
		t.Fatal("expected a pending answer")
	}

	result, err := r.AnswerWithCorpus(context.Background(), testScope(), "لخص هذا الملف", "نص المستند")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AnswerText != "تحليل المستند" {
		t.Errorf("answer = %q", result.AnswerText)
	}
	if _, _, ok := pending.Get("ahmed"); !ok {
		t.Error("media analysis must not consume the pending slot")
	}
}

func TestIsConfirmation(t *testing.T) {
	for _, word := range constant.ConfirmationWords {
		if !IsConfirmation("  " + word + " ") {
			t.Errorf("confirmation word %q not recognized", word)
		}
	}
	if IsConfirmation("لا") {
		t.Error("'لا' is not a confirmation")
	}
	if IsConfirmation("نعم ولكن") {
		t.Error("partial match must not confirm")
	}
}
