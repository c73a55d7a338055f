// File: medassist/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"medassist/config"
	"medassist/cron"
	"medassist/database"
	appointmentRepoPkg "medassist/database/repository/appointment"
	doctorRepoPkg "medassist/database/repository/doctor"
	medicineRepoPkg "medassist/database/repository/medicine"
	"medassist/handlers"
	"medassist/routes"
	"medassist/services/assistant"
	"medassist/services/booking"
	"medassist/services/chat"
	"medassist/services/notification"
	"medassist/services/session"
	"medassist/services/tasks"
	"medassist/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	medicineRepo := medicineRepoPkg.NewMongoMedicineRepo()

	// Embeddings always come from OpenAI so the vector indexes stay stable
	// across chat backends.
	openAIClient := assistant.NewOpenAIClient(
		config.AppConfig.OpenAIAPIKey,
		config.AppConfig.OpenAIBaseURL,
		config.AppConfig.OpenAIChatModel,
		config.AppConfig.OpenAIEmbeddingModel,
	)

	var llm assistant.LLM = openAIClient
	if config.AppConfig.AIBackend == "gemini" {
		geminiClient, err := assistant.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		llm = geminiClient
	}

	hospitalRetriever := assistant.NewVectorRetriever(
		database.HospitalDB().Collection("documents"),
		assistant.HospitalVectorIndex,
		openAIClient,
	)
	pharmacyRetriever := assistant.NewVectorRetriever(
		database.PharmacyDB().Collection("medicines"),
		assistant.MedicineVectorIndex,
		openAIClient,
	)

	hospitalProvider := assistant.NewHospitalProvider(hospitalRetriever, llm)
	pharmacyProvider := assistant.NewPharmacyProvider(pharmacyRetriever, llm)

	// Session store. Redis keeps dialog state across restarts; memory is the
	// bounded single-node default.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	var sessionStore session.Store
	if config.AppConfig.SessionBackend == "redis" {
		utils.InitSessionCache()
		sessionStore = session.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL)
	} else {
		sessionStore = session.NewMemoryStore(config.AppConfig.SessionCapacity, sessionTTL)
	}

	// Reminder queue. Only wired when Redis is configured; the booking flow
	// treats a nil scheduler as "no reminders".
	var reminderScheduler booking.ReminderScheduler
	if config.AppConfig.RedisAddr != "" {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
		reminderScheduler = tasks.NewScheduler(asynqClient)
		cron.InitReminderWorker(notification.NewLogNotificationService())
	}

	// services.
	bookingFlow := booking.NewFlow(doctorRepo, appointmentRepo, reminderScheduler)
	statusService := &chat.StatusService{Appointments: appointmentRepo}
	synthesizer := chat.NewSynthesizer(hospitalProvider, pharmacyProvider,
		time.Duration(config.AppConfig.ProviderTimeoutSec)*time.Second)
	chatService := chat.NewService(sessionStore, bookingFlow, statusService, synthesizer)

	handlers.ChatService = chatService
	handlers.AppointmentRepo = appointmentRepo
	handlers.IndexerService = &assistant.Indexer{
		Doctors:   doctorRepo,
		Medicines: medicineRepo,
		Embedder:  openAIClient,
	}

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5002"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
