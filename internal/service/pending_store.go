package service

import (
	"time"

	"edubot-be/internal/repository/memory"
	"edubot-be/pkg/resolve"
)

// pendingStore adapts the in-memory confirmation repository to the
// resolver's pending interface.
type pendingStore struct {
	repo *memory.ConfirmationRepository
}

func NewPendingStore(repo *memory.ConfirmationRepository) resolve.Pending {
	return &pendingStore{repo: repo}
}

func (p *pendingStore) Save(username, question, answer string) {
	p.repo.Save(&memory.PendingAnswer{
		Username: username,
		Question: question,
		Answer:   answer,
		StoredAt: time.Now(),
	})
}

func (p *pendingStore) Get(username string) (string, string, bool) {
	pending, ok := p.repo.Get(username)
	if !ok {
		return "", "", false
	}
	return pending.Question, pending.Answer, true
}

func (p *pendingStore) Delete(username string) {
	p.repo.Delete(username)
}
