package bootstrap

import (
	"context"
	"log"
	"time"

	"edubot-be/internal/config"
	"edubot-be/internal/controller"
	"edubot-be/internal/pkg/logger"
	"edubot-be/internal/pkg/mailer"
	"edubot-be/internal/repository/implementation"
	"edubot-be/internal/repository/memory"
	"edubot-be/internal/service"
	"edubot-be/pkg/ai"
	"edubot-be/pkg/chatlog"
	"edubot-be/pkg/extract"
	"edubot-be/pkg/filestore"
	"edubot-be/pkg/resolve"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const conversationTopic = "conversation.recorded"

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	MediaController   controller.IMediaController
	CatalogController controller.ICatalogController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	alertMailer := mailer.NewAlertMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.AlertEmail,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	catalogRepo := implementation.NewCatalogRepository(db)
	curatedRepo := implementation.NewCuratedQARepository(db)
	fileRepo := implementation.NewCurriculumFileRepository(db)
	conversationRepo := implementation.NewConversationRepository(db)

	confirmationRepo := memory.NewConfirmationRepository(1 * time.Hour)
	uploadRepo := memory.NewUploadRepository(1 * time.Hour)

	// 4. Infrastructure
	fileStore, err := filestore.New(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize upload store: %v", err)
	}

	transcripts, err := chatlog.NewWriter(cfg.App.ChatLogDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize chat log dir: %v", err)
	}

	generator, err := ai.NewGeminiGenerator(context.Background(), cfg.Ai.GeminiAPIKey, cfg.Ai.ChatModel, cfg.Ai.ImageModel)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Gemini client: %v", err)
	}
	log.Printf("[INFO] Using chat model: %s, image model: %s", cfg.Ai.ChatModel, cfg.Ai.ImageModel)

	extractChain := extract.NewChain()
	extractChain.Register(extract.FamilyImage, extract.NewImageExtractor())
	extractChain.Register(extract.FamilyPDF, extract.NewPDFExtractor())
	extractChain.Register(extract.FamilyDocx, extract.NewDocxExtractor())
	extractChain.Register(extract.FamilyAudio, extract.NewAudioExtractor(generator))
	extractChain.Register(extract.FamilyVideo, extract.NewVideoExtractor(generator))
	extractChain.Register(extract.FamilyText, extract.NewTextExtractor())

	// 5. Resolution Pipeline
	knowledgeSource := service.NewKnowledgeSource(curatedRepo, fileRepo, cfg.Ai.ConfidenceThreshold)
	pendingStore := service.NewPendingStore(confirmationRepo)

	policy := ai.DefaultRetryPolicy()
	policy.MaxAttempts = cfg.Ai.MaxRetries
	policy.Budget = cfg.Ai.RetryBudget
	policy.AttemptTimeout = cfg.Ai.RequestTimeout

	resolver := resolve.NewResolver(knowledgeSource, generator, pendingStore, policy, cfg.Ai.CorpusCharBudget)

	// 6. Services
	publisherService := service.NewPublisherService(conversationTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		conversationTopic,
		conversationRepo,
		transcripts,
		sysLogger,
	)

	mediaService := service.NewMediaService(
		fileStore,
		uploadRepo,
		extractChain,
		resolver,
		catalogRepo,
		generator,
		cfg.Ai.GeneratedImageDir,
		cfg.Upload.MaxBytes,
		sysLogger,
	)
	chatService := service.NewChatService(
		resolver,
		catalogRepo,
		uploadRepo,
		fileStore,
		extractChain,
		mediaService,
		publisherService,
		alertMailer,
		sysLogger,
	)
	catalogService := service.NewCatalogService(catalogRepo)
	curriculumService := service.NewCurriculumService(fileRepo, curatedRepo, catalogRepo, fileStore, extractChain, sysLogger)
	adminService := service.NewAdminService(&cfg.Admin, conversationRepo, catalogRepo, transcripts, sysLogger)

	// 7. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		MediaController:   controller.NewMediaController(mediaService),
		CatalogController: controller.NewCatalogController(catalogService),
		AdminController:   controller.NewAdminController(adminService, curriculumService, catalogService, cfg.Admin.JWTSecret),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
