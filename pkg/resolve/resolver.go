package resolve

import (
	"context"
	"strings"

	"edubot-be/internal/constant"
	"edubot-be/pkg/ai"
	"edubot-be/pkg/knowledge"
)

// Scope identifies who is asking and which slice of the curriculum
// applies. Names travel with the ids so prompts and fallback messages
// never need another lookup.
type Scope struct {
	Username       string
	GradeID        uint
	SemesterID     uint
	DepartmentID   uint
	GradeName      string
	SemesterName   string
	DepartmentName string
}

// Result is a resolved answer plus its provenance.
type Result struct {
	AnswerText           string
	Source               string
	RequiresConfirmation bool
	PendingAnswer        string
}

// Knowledge supplies scoped curriculum material.
type Knowledge interface {
	Lookup(ctx context.Context, scope Scope, question string) (*knowledge.Candidate, bool, error)
	Corpus(ctx context.Context, scope Scope) (string, error)
}

// Pending is the single-slot per-student store for answers awaiting
// confirmation.
type Pending interface {
	Save(username, question, answer string)
	Get(username string) (question, answer string, ok bool)
	Delete(username string)
}

// Generator produces the AI fallback answer.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Resolver struct {
	knowledge    Knowledge
	generator    Generator
	pending      Pending
	policy       ai.RetryPolicy
	corpusBudget int
}

func NewResolver(kn Knowledge, gen Generator, pending Pending, policy ai.RetryPolicy, corpusBudget int) *Resolver {
	return &Resolver{
		knowledge:    kn,
		generator:    gen,
		pending:      pending,
		policy:       policy,
		corpusBudget: corpusBudget,
	}
}

// IsConfirmation reports whether a message is one of the accepted
// yes-words.
func IsConfirmation(message string) bool {
	trimmed := strings.TrimSpace(message)
	for _, word := range constant.ConfirmationWords {
		if strings.EqualFold(trimmed, word) {
			return true
		}
	}
	return false
}

// HasPending reports whether the student has an answer awaiting
// confirmation.
func (r *Resolver) HasPending(username string) bool {
	_, _, ok := r.pending.Get(username)
	return ok
}

// Resolve runs the answer pipeline for one message. When mediaText is
// non-empty it is the text extracted from an attached file and it
// becomes the corpus excerpt for the AI fallback, replacing the stored
// curriculum material. A non-nil error accompanies the error result so
// callers can alert the operator; the Result is always usable as the
// student-facing reply.
func (r *Resolver) Resolve(ctx context.Context, scope Scope, message, mediaText string) (*Result, error) {
	// A pending answer consumes the next message whatever it says:
	// yes-words release the held answer, anything else cancels it and
	// the student re-asks.
	if _, answer, ok := r.pending.Get(scope.Username); ok {
		r.pending.Delete(scope.Username)
		if IsConfirmation(message) {
			return &Result{AnswerText: answer, Source: constant.SourceGemini}, nil
		}
		return &Result{AnswerText: constant.CancelledAnswerMessage, Source: constant.SourceCancelled}, nil
	}

	candidate, confident, err := r.knowledge.Lookup(ctx, scope, message)
	if err != nil {
		return &Result{AnswerText: constant.FallbackErrorMessage, Source: constant.SourceError}, err
	}
	if confident && candidate != nil {
		return &Result{AnswerText: candidate.Answer, Source: constant.SourceBook}, nil
	}

	corpus := mediaText
	if corpus == "" {
		corpus, err = r.knowledge.Corpus(ctx, scope)
		if err != nil {
			return &Result{AnswerText: constant.FallbackErrorMessage, Source: constant.SourceError}, err
		}
	}

	answer, err := r.generate(ctx, scope, message, corpus)
	if err != nil {
		return &Result{AnswerText: constant.FallbackErrorMessage, Source: constant.SourceError}, err
	}

	answer, uncertain := ai.StripUncertainty(answer)

	if ai.IsRefusal(answer) {
		return &Result{
			AnswerText: constant.DefaultAnswerMessage(scope.DepartmentName),
			Source:     constant.SourceDefault,
		}, nil
	}

	if uncertain {
		r.pending.Save(scope.Username, message, answer)
		return &Result{
			AnswerText:           constant.ConfirmationPrompt,
			Source:               constant.SourceGemini,
			RequiresConfirmation: true,
			PendingAnswer:        answer,
		}, nil
	}

	return &Result{AnswerText: answer, Source: constant.SourceGemini}, nil
}

// AnswerWithCorpus answers a question against the supplied text only.
// It never touches the pending slot or the stored knowledge, so
// one-off media analysis cannot disturb a confirmation exchange.
func (r *Resolver) AnswerWithCorpus(ctx context.Context, scope Scope, question, corpus string) (*Result, error) {
	answer, err := r.generate(ctx, scope, question, corpus)
	if err != nil {
		return &Result{AnswerText: constant.FallbackErrorMessage, Source: constant.SourceError}, err
	}

	answer, _ = ai.StripUncertainty(answer)
	if ai.IsRefusal(answer) {
		return &Result{
			AnswerText: constant.DefaultAnswerMessage(scope.DepartmentName),
			Source:     constant.SourceDefault,
		}, nil
	}
	return &Result{AnswerText: answer, Source: constant.SourceGemini}, nil
}

func (r *Resolver) generate(ctx context.Context, scope Scope, question, corpus string) (string, error) {
	contextInfo := ai.BuildContextInfo(scope.GradeName, scope.SemesterName, scope.DepartmentName)
	prompt := ai.BuildFallbackPrompt(contextInfo, corpus, question, r.corpusBudget)

	return ai.WithRetry(ctx, r.policy, func(ctx context.Context) (string, error) {
		return r.generator.Generate(ctx, constant.CurriculumSystemPrompt, prompt)
	})
}
