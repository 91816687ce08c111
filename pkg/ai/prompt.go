package ai

import (
	"fmt"
	"strings"

	"edubot-be/internal/constant"
)

// BuildFallbackPrompt assembles the question prompt: student context,
// curriculum corpus head-truncated to the character budget, then the
// question itself.
func BuildFallbackPrompt(contextInfo, corpus, question string, corpusCharBudget int) string {
	if corpus == "" {
		corpus = constant.NoCurriculumPlaceholder
	} else if len(corpus) > corpusCharBudget {
		cut := corpusCharBudget
		// Back off to a rune boundary so Arabic text is not split
		// mid-character.
		for cut > 0 && corpus[cut]&0xC0 == 0x80 {
			cut--
		}
		corpus = corpus[:cut]
	}
	return fmt.Sprintf(constant.FallbackPromptTemplate, contextInfo, corpus, question)
}

// BuildContextInfo renders the student's academic scope for the prompt.
func BuildContextInfo(gradeName, semesterName, departmentName string) string {
	return fmt.Sprintf("الفرقة: %s، الترم: %s، القسم: %s", gradeName, semesterName, departmentName)
}

// StripUncertainty removes the model's uncertainty marker and reports
// whether it was present. The marker only counts at the head of the
// answer, which is where the system prompt tells the model to put it.
func StripUncertainty(answer string) (string, bool) {
	trimmed := strings.TrimSpace(answer)
	if strings.HasPrefix(trimmed, constant.UncertaintyMarker) {
		clean := strings.TrimSpace(strings.TrimPrefix(trimmed, constant.UncertaintyMarker))
		return clean, true
	}
	return trimmed, false
}

// IsImageRequest reports whether a chat message is asking the bot to
// draw something. Keyword matching is a best-effort pre-filter, not an
// intent detector.
func IsImageRequest(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range constant.ImageRequestKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// BuildImagePrompt prefixes the student's description with the quality
// steering the image model responds to.
func BuildImagePrompt(description string) string {
	return constant.ImageGenerationPromptPrefix + strings.TrimSpace(description)
}

// IsRefusal reports whether the model declined to answer because the
// question falls outside the curriculum.
func IsRefusal(answer string) bool {
	for _, phrase := range constant.RefusalPhrases {
		if strings.Contains(answer, phrase) {
			return true
		}
	}
	return false
}
