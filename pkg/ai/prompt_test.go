package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"edubot-be/internal/constant"
)

func TestBuildFallbackPromptTruncatesCorpus(t *testing.T) {
	corpus := strings.Repeat("شرح المنهج الدراسي. ", 10000)
	prompt := BuildFallbackPrompt("الفرقة الأولى", corpus, "ما هو القانون؟", 1000)

	if len(prompt) > 1200 {
		t.Errorf("prompt length %d, corpus should be truncated to the budget", len(prompt))
	}
	if !utf8.ValidString(prompt) {
		t.Error("truncation split a rune")
	}
	if !strings.Contains(prompt, "ما هو القانون؟") {
		t.Error("question missing from prompt")
	}
}

func TestBuildFallbackPromptEmptyCorpus(t *testing.T) {
	prompt := BuildFallbackPrompt("سياق", "", "سؤال", 1000)
	if !strings.Contains(prompt, constant.NoCurriculumPlaceholder) {
		t.Error("empty corpus should use the placeholder")
	}
}

func TestStripUncertainty(t *testing.T) {
	answer, uncertain := StripUncertainty(constant.UncertaintyMarker + " الإجابة هي كذا")
	if !uncertain {
		t.Error("marker at head should flag uncertainty")
	}
	if answer != "الإجابة هي كذا" {
		t.Errorf("answer = %q, marker should be stripped", answer)
	}

	answer, uncertain = StripUncertainty("إجابة واثقة")
	if uncertain {
		t.Error("no marker, no uncertainty")
	}
	if answer != "إجابة واثقة" {
		t.Errorf("answer = %q", answer)
	}

	// Marker mid-answer is model chatter, not a protocol signal.
	_, uncertain = StripUncertainty("إجابة تذكر " + constant.UncertaintyMarker + " في الوسط")
	if uncertain {
		t.Error("marker not at head must not flag uncertainty")
	}
}

func TestIsRefusal(t *testing.T) {
	if len(constant.RefusalPhrases) == 0 {
		t.Fatal("refusal phrase list is empty")
	}
	if !IsRefusal("عذراً، " + constant.RefusalPhrases[0]) {
		t.Error("answer containing a refusal phrase should be detected")
	}
	if IsRefusal("هذه إجابة عادية عن الفيزياء") {
		t.Error("ordinary answer flagged as refusal")
	}
}

func TestIsImageRequest(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"ارسم لي قلب الإنسان", true},
		{"من فضلك أنشئ صورة للخلية النباتية", true},
		{"Generate an image of a volcano", true},
		{"ما هو قانون نيوتن الأول؟", false},
		{"اشرح لي الدرس", false},
	}
	for _, tt := range tests {
		if got := IsImageRequest(tt.message); got != tt.want {
			t.Errorf("IsImageRequest(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := BuildImagePrompt("  قلب الإنسان ")
	if !strings.HasPrefix(prompt, constant.ImageGenerationPromptPrefix) {
		t.Error("prompt missing the quality prefix")
	}
	if !strings.HasSuffix(prompt, "قلب الإنسان") {
		t.Errorf("prompt = %q, description should be trimmed", prompt)
	}
}
