package knowledge

import (
	"testing"
	"time"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "latin lowercased",
			input: "What is Newton's Law?",
			want:  []string{"what", "is", "newton", "s", "law"},
		},
		{
			name:  "arabic diacritics stripped",
			input: "مَا هُوَ قَانُونُ نيوتن؟",
			want:  []string{"ما", "هو", "قانون", "نيوتن"},
		},
		{
			name:  "alef variants folded",
			input: "أين إجابة الآلة",
			want:  []string{"اين", "اجابه", "الاله"},
		},
		{
			name:  "empty",
			input: "؟!،",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDiceSimilarity(t *testing.T) {
	a := Tokenize("ما هو قانون نيوتن الاول")
	b := Tokenize("ما هو قانون نيوتن الأول")
	if got := DiceSimilarity(a, b); got != 1 {
		t.Errorf("identical questions after folding: got %v, want 1", got)
	}

	c := Tokenize("كيف تعمل الخلية")
	if got := DiceSimilarity(a, c); got >= 0.5 {
		t.Errorf("unrelated questions: got %v, want < 0.5", got)
	}
}

func TestKeywordOverlap(t *testing.T) {
	questionTokens := Tokenize("اشرح لي قانون نيوتن الأول في الفيزياء")

	if got := KeywordOverlap(questionTokens, "قانون نيوتن, الحركة"); got != 0.5 {
		t.Errorf("one of two keywords matched: got %v, want 0.5", got)
	}
	if got := KeywordOverlap(questionTokens, ""); got != 0 {
		t.Errorf("empty keywords: got %v, want 0", got)
	}
}

func TestBestCandidateThresholdBoundary(t *testing.T) {
	pairs := []Pair{
		{Question: "ما هو قانون نيوتن الأول", Answer: "الجسم يبقى على حالته"},
	}

	// Identical question scores 1.0, comfortably past any threshold.
	c, confident := BestCandidate("ما هو قانون نيوتن الأول", pairs, nil, 0.6)
	if c == nil || !confident {
		t.Fatal("exact curated match should be confident")
	}
	if c.Answer != "الجسم يبقى على حالته" {
		t.Errorf("answer = %q", c.Answer)
	}
	if c.Kind != KindCuratedQA {
		t.Errorf("kind = %q, want %q", c.Kind, KindCuratedQA)
	}

	// A score landing exactly on the threshold still counts as confident.
	c, confident = BestCandidate("ما هو قانون نيوتن الأول", pairs, nil, 1.0)
	if c == nil || !confident {
		t.Error("score equal to threshold must be confident")
	}

	_, confident = BestCandidate("كيف تعمل الخلية العصبية", pairs, nil, 0.6)
	if confident {
		t.Error("unrelated question must not be confident")
	}
}

func TestBestCandidateExcerpts(t *testing.T) {
	older := Excerpt{
		Text:       "الفصل الأول يشرح قانون نيوتن الأول للحركة بالتفصيل مع أمثلة",
		UploadedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := Excerpt{
		Text:       "ملخص محدث عن قانون نيوتن الأول للحركة مع تمارين محلولة",
		UploadedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	c, confident := BestCandidate("قانون نيوتن الأول للحركة", nil, []Excerpt{older, newer}, 0.6)
	if c == nil || !confident {
		t.Fatal("question fully contained in excerpts should be confident")
	}
	if c.Kind != KindDocumentExcerpt {
		t.Fatalf("kind = %q, want %q", c.Kind, KindDocumentExcerpt)
	}
	if !c.UploadedAt.Equal(newer.UploadedAt) {
		t.Error("equal-score tie should prefer the newer upload")
	}
}

func TestBestCandidateCuratedBeatsExcerptOnTie(t *testing.T) {
	pairs := []Pair{
		{Question: "قانون نيوتن الأول", Answer: "إجابة منسقة"},
	}
	excerpts := []Excerpt{
		{Text: "قانون نيوتن الأول", UploadedAt: time.Now()},
	}

	c, _ := BestCandidate("قانون نيوتن الأول", pairs, excerpts, 0.6)
	if c == nil || c.Kind != KindCuratedQA {
		t.Fatal("curated pair should win an equal-score tie with an excerpt")
	}
}

func TestChunkDocument(t *testing.T) {
	content := "فقرة قصيرة.\n\nفقرة ثانية قصيرة.\n\n"
	chunks := ChunkDocument(content)
	if len(chunks) != 1 {
		t.Fatalf("short paragraphs should merge into one chunk, got %d", len(chunks))
	}

	if got := ChunkDocument(""); got != nil {
		t.Errorf("empty content should yield no chunks, got %v", got)
	}
}

func TestRankOrdersByScoreDesc(t *testing.T) {
	pairs := []Pair{
		{Question: "قانون نيوتن الأول للحركة", Answer: "إجابة أولى"},
		{Question: "التمثيل الضوئي في النباتات", Answer: "إجابة بعيدة"},
	}
	excerpts := []Excerpt{
		{Text: "شرح قانون نيوتن الأول للحركة مع أمثلة", UploadedAt: time.Now()},
	}

	ranked := Rank("ما هو قانون نيوتن الأول للحركة؟", pairs, excerpts)
	if len(ranked) < 2 {
		t.Fatalf("ranked = %d candidates, want at least 2", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("candidates out of order at %d: %f > %f", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
	if ranked[0].Answer == "إجابة بعيدة" {
		t.Error("the unrelated pair must not rank first")
	}

	if got := Rank("", pairs, excerpts); got != nil {
		t.Errorf("empty question should rank nothing, got %v", got)
	}
}
