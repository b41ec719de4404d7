package main

import (
	"context"
	"fmt"
	"log"

	_ "github.com/kelasin/kelasin-api/api/swagger"
	"github.com/kelasin/kelasin-api/internal/handler"
	"github.com/kelasin/kelasin-api/internal/repository"
	"github.com/kelasin/kelasin-api/internal/service"
	"github.com/kelasin/kelasin-api/pkg/config"
	"github.com/kelasin/kelasin-api/pkg/database"
	"github.com/kelasin/kelasin-api/pkg/export"
	"github.com/kelasin/kelasin-api/pkg/logger"
	"github.com/kelasin/kelasin-api/pkg/mailer"
	"github.com/kelasin/kelasin-api/pkg/storage"
)

// @title Kelasin API
// @version 1.0.0
// @description Online course marketplace backend
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	store, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	mailQueue := service.NewMailQueue(mailer.NewSMTPSender(cfg.SMTP), cfg.BaseURL, cfg.Mail, logr)
	mailQueue.Start(context.Background())
	defer mailQueue.Stop()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tutorRepo := repository.NewTutorRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	metricsSvc := service.NewMetricsService()
	uploadSvc := service.NewUploadService(store, cfg.Upload, logr)
	authSvc := service.NewAuthService(userRepo, mailQueue, metricsSvc, nil, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	courseSvc := service.NewCourseService(courseRepo, uploadSvc, nil, logr)
	catalogSvc := service.NewCatalogService(categoryRepo, tutorRepo, nil, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, export.NewCSVExporter(), nil, logr)
	moduleSvc := service.NewModuleService(moduleRepo, nil, logr)
	orderSvc := service.NewOrderService(orderRepo, export.NewPDFExporter(), nil, logr)
	reviewSvc := service.NewReviewService(reviewRepo, nil, logr)

	r := handler.NewRouter(handler.RouterDeps{
		Config:     cfg,
		Logger:     logr,
		Metrics:    metricsSvc,
		DB:         db,
		Auth:       authSvc,
		Course:     courseSvc,
		Catalog:    catalogSvc,
		Enrollment: enrollmentSvc,
		Module:     moduleSvc,
		Order:      orderSvc,
		Review:     reviewSvc,
		Upload:     uploadSvc,
		UploadDir:  store.Dir(),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
