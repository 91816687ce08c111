package constant

// Answer provenance recorded on every conversation row.
const (
	SourceBook            = "book"
	SourceGemini          = "gemini"
	SourceDefault         = "default"
	SourceError           = "error"
	SourceCancelled       = "cancelled"
	SourceImageGeneration = "gemini_image_generation"
)

// Replies accepted as a positive confirmation of a pending answer.
var ConfirmationWords = []string{"نعم", "اه", "موافق", "yes", "نعم أريد الإجابة"}

const (
	// Returned when the user declines a pending low-confidence answer.
	CancelledAnswerMessage = "تم إلغاء الإجابة. يمكنك إعادة صياغة السؤال أو مراجعة المعلم."

	// Returned when the fallback exhausts retries or fails hard.
	FallbackErrorMessage = "عذراً، حدث خطأ أثناء معالجة سؤالك. يرجى المحاولة مرة أخرى أو إعادة صياغة السؤال."

	// Returned with the confirmation prompt on an uncertain answer.
	ConfirmationPrompt = "لست متأكداً تماماً من هذه الإجابة. هل تريد عرضها على أي حال؟ أجب بـ \"نعم\" للتأكيد."

	// Returned when the model declines an out-of-curriculum question.
	OutOfCurriculumMessage = "هذا السؤال غير موجود في المنهج المرفوع. يرجى مراجعة المنهج أو سؤال المدرس."

	// Returned when processing an uploaded file fails.
	FileProcessingErrorMessage = "عذراً، لم أتمكن من معالجة الملف المرفوع."

	// Image generation outcomes.
	ImageGeneratedMessage             = "تم إنتاج الصورة بنجاح."
	ImageGenerationFailedMessage      = "حدث خطأ في إنتاج الصورة. يرجى المحاولة مرة أخرى."
	ImageGenerationUnavailableMessage = "عذراً، خدمة إنتاج الصور غير متوفرة حالياً. يرجى المحاولة لاحقاً."

	UnknownCatalogName = "غير محدد"
)

// DefaultMediaQuestion is the stand-in question when a student sends a
// file with no message, phrased per media family.
func DefaultMediaQuestion(fileType string) string {
	switch fileType {
	case "image":
		return "حلل هذه الصورة واستخرج النص منها"
	case "audio":
		return "استخرج النص من هذا الملف الصوتي"
	case "video":
		return "حلل محتوى هذا الفيديو"
	default:
		return "لخص محتوى هذا الملف"
	}
}

// DefaultAnswerMessage builds the no-answer apology, naming the department
// when one is known.
func DefaultAnswerMessage(departmentName string) string {
	topic := departmentName
	if topic == "" || topic == UnknownCatalogName {
		topic = "هذا الموضوع"
	}
	return "عذراً، لم أتمكن من العثور على إجابة دقيقة لسؤالك حول " + topic +
		". يرجى إعادة صياغة السؤال بطريقة أوضح أو مراجعة معلمك للحصول على معلومات متخصصة عن هذا الموضوع."
}
