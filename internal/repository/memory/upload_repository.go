package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// StudentUpload tracks a media file a student uploaded for their next
// question. Slots expire so abandoned uploads do not pile up.
type StudentUpload struct {
	FileId     string
	FilePath   string
	FileType   string
	UploadedAt time.Time
}

type UploadRepository struct {
	cache *cache.Cache
}

func NewUploadRepository(ttl time.Duration) *UploadRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &UploadRepository{
		cache: c,
	}
}

func (r *UploadRepository) Save(fileId string, upload *StudentUpload) {
	r.cache.Set(fileId, upload, cache.DefaultExpiration)
}

func (r *UploadRepository) Get(fileId string) (*StudentUpload, bool) {
	if x, found := r.cache.Get(fileId); found {
		return x.(*StudentUpload), true
	}
	return nil, false
}

func (r *UploadRepository) Delete(fileId string) {
	r.cache.Delete(fileId)
}
