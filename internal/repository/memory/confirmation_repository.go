package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// PendingAnswer is a deferred AI answer awaiting the student's yes/no.
type PendingAnswer struct {
	Username string
	Question string
	Answer   string
	StoredAt time.Time
}

// ConfirmationRepository holds at most one pending answer per student.
// A new question overwrites the previous slot.
type ConfirmationRepository struct {
	cache *cache.Cache
}

func NewConfirmationRepository(ttl time.Duration) *ConfirmationRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &ConfirmationRepository{
		cache: c,
	}
}

func (r *ConfirmationRepository) Save(pending *PendingAnswer) {
	r.cache.Set(pending.Username, pending, cache.DefaultExpiration)
}

func (r *ConfirmationRepository) Get(username string) (*PendingAnswer, bool) {
	if x, found := r.cache.Get(username); found {
		return x.(*PendingAnswer), true
	}
	return nil, false
}

func (r *ConfirmationRepository) Delete(username string) {
	r.cache.Delete(username)
}
