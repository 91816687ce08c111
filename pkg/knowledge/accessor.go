package knowledge

import (
	"sort"
	"strings"
	"time"
)

const (
	KindCuratedQA       = "curated_qa"
	KindDocumentExcerpt = "document_excerpt"

	// Paragraphs shorter than this are merged with their neighbour so
	// one-line headings never stand alone as candidates.
	excerptTargetChars = 500
)

// Pair is a curated question/answer entry.
type Pair struct {
	Question string
	Answer   string
	Keywords string
}

// Excerpt is a chunk of an uploaded curriculum document.
type Excerpt struct {
	Text       string
	UploadedAt time.Time
}

// Candidate is the best-scoring knowledge match for a question.
type Candidate struct {
	Text       string
	Answer     string
	Score      float64
	Kind       string
	UploadedAt time.Time
}

// ChunkDocument splits extracted document text into excerpt-sized
// pieces along paragraph boundaries.
func ChunkDocument(content string) []string {
	paragraphs := strings.Split(content, "\n\n")

	var chunks []string
	var current strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
		if current.Len() >= excerptTargetChars {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// ScorePair rates a curated pair against the question. Stored keywords
// and the stored question text each get a shot; the better one wins.
func ScorePair(questionTokens []string, p Pair) float64 {
	score := DiceSimilarity(questionTokens, Tokenize(p.Question))
	if p.Keywords != "" {
		if kw := KeywordOverlap(questionTokens, p.Keywords); kw > score {
			score = kw
		}
	}
	return score
}

// Rank scores every curated pair and document excerpt against the
// question and returns the non-zero matches ordered best first. Ties
// go to curated pairs over excerpts, then to newer excerpts.
func Rank(question string, pairs []Pair, excerpts []Excerpt) []Candidate {
	questionTokens := Tokenize(question)
	if len(questionTokens) == 0 {
		return nil
	}

	var candidates []Candidate

	for _, p := range pairs {
		score := ScorePair(questionTokens, p)
		if score == 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Text:   p.Question,
			Answer: p.Answer,
			Score:  score,
			Kind:   KindCuratedQA,
		})
	}

	for _, e := range excerpts {
		score := Containment(questionTokens, Tokenize(e.Text))
		if score == 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Text:       e.Text,
			Answer:     e.Text,
			Score:      score,
			Kind:       KindDocumentExcerpt,
			UploadedAt: e.UploadedAt,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Kind != b.Kind {
			return a.Kind == KindCuratedQA
		}
		return a.UploadedAt.After(b.UploadedAt)
	})
	return candidates
}

// BestCandidate picks the top of the ranking. The second return
// reports confidence: true when the score reaches the threshold,
// threshold itself included.
func BestCandidate(question string, pairs []Pair, excerpts []Excerpt, threshold float64) (*Candidate, bool) {
	ranked := Rank(question, pairs, excerpts)
	if len(ranked) == 0 {
		return nil, false
	}
	best := ranked[0]
	return &best, best.Score >= threshold
}
