package constant

const (
	// UncertaintyMarker must lead the model's reply when it is not fully
	// certain the answer is grounded in the supplied curriculum. The client
	// strips it before the text reaches the user.
	UncertaintyMarker = "[غير متأكد]"

	// CurriculumSystemPrompt pins the model to the uploaded curriculum and
	// defines the refusal and uncertainty protocol.
	CurriculumSystemPrompt = `أنت مساعد تعليمي ذكي متخصص في المناهج الدراسية فقط.

التعليمات المهمة والملزمة:
1. أجب فقط من محتوى المنهج المرفوع في الرسالة
2. إذا لم تجد الإجابة في محتوى المنهج المرفوع، قل: "` + OutOfCurriculumMessage + `"
3. لا تجب على أسئلة عامة أو غير مرتبطة بالمنهج المرفوع
4. اركز على المحتوى التعليمي المقرر فقط
5. لا تخترع معلومات أو تضيف محتوى من خارج المنهج المرفوع
6. استشهد بأجزاء من المنهج عند الإجابة لتأكيد أن الإجابة من المصدر الصحيح
7. إذا لم تكن متأكداً تماماً من أن إجابتك مستمدة من المنهج، ابدأ ردك بالعلامة ` + UncertaintyMarker

	// FallbackPromptTemplate carries the scope context, the curriculum
	// excerpt and the question: fmt.Sprintf(template, context, corpus, question).
	FallbackPromptTemplate = `معلومات السياق:
%s

محتوى المنهج المرفوع:
%s

السؤال: %s`

	// NoCurriculumPlaceholder substitutes the corpus block when no
	// curriculum document matches the requested scope.
	NoCurriculumPlaceholder = "لا يوجد محتوى منهج مرفوع لهذه الفرقة والقسم"

	// TranscriptionPrompt asks the model to transcribe attached audio.
	TranscriptionPrompt = "اكتب النص المنطوق في هذا الملف الصوتي كما هو، بالعربية أو الإنجليزية حسب لغة المتحدث، دون أي تعليق إضافي."

	// VideoAnalysisPrompt asks the model to describe an attached video
	// and transcribe any speech in it.
	VideoAnalysisPrompt = "صف محتوى هذا الفيديو واكتب الكلام المنطوق فيه إن وجد."

	// ImageGenerationPromptPrefix steers the image model toward usable
	// output quality.
	ImageGenerationPromptPrefix = "أنشئ صورة عالية الجودة: "
)

// ImageRequestKeywords is a best-effort pre-filter for messages that
// ask the bot to draw something rather than answer a question.
var ImageRequestKeywords = []string{
	"ارسم",
	"أرسم",
	"اصنع صورة",
	"أنشئ صورة",
	"انشئ صورة",
	"صمم صورة",
	"اعمل صورة",
	"ولد صورة",
	"توليد صورة",
	"generate an image",
	"generate image",
	"draw me",
	"create an image",
}

// RefusalPhrases mark a model reply as an out-of-curriculum decline.
var RefusalPhrases = []string{
	"غير موجود في المنهج",
	"ليس في المنهج",
	"خارج نطاق",
	"غير مقرر",
	"لا أستطيع الإجابة",
	"لا يمكنني الإجابة",
}
