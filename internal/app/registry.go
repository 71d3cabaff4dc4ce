package app

import (
	"net/http"

	"github.com/cg-tech-git/pmo-v2/internal/delivery"
	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"
	"github.com/cg-tech-git/pmo-v2/internal/history"
	"github.com/cg-tech-git/pmo-v2/internal/messaging/kafka"
	"github.com/cg-tech-git/pmo-v2/internal/middleware"
	"github.com/cg-tech-git/pmo-v2/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newReportService wires the engine against the warehouse. The API and the
// e-mail consumer share it so a re-download renders exactly like the original.
func newReportService(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (report.Service, history.Repository) {
	classifier := document.DefaultClassifier()
	engine := report.NewEngine(
		fieldmap.NewRegistry(classifier),
		classifier,
		report.PDFOptions{Title: cfg.ReportTitle, FontPath: cfg.PDFFontPath},
	)

	historyRepo := history.NewRepository(gormDB)
	svc := report.NewService(
		engine,
		employee.NewRepository(gormDB),
		document.NewRepository(gormDB),
		historyRepo,
		logger,
	)
	return svc, historyRepo
}

func newDeliveryService(
	cfg Config,
	gormDB *gorm.DB,
	reports report.Service,
	historyRepo history.Repository,
	logger *zap.Logger,
) (delivery.Service, error) {
	mailer := delivery.NewLogMailer(logger)
	if cfg.SMTP.Host != "" {
		m, err := delivery.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		mailer = m
	} else {
		logger.Warn("SMTP_HOST not set, e-mails are logged instead of sent")
	}

	return delivery.NewService(
		historyRepo,
		kafka.NewOutboxRepository(gormDB),
		reports,
		mailer,
		cfg.ReportTitle,
		logger,
	), nil
}

func registerModules(
	router *gin.Engine,
	cfg Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Services ---
	employeeService := employee.NewService(employee.NewRepository(gormDB), rdb, logger)
	reportService, historyRepo := newReportService(cfg, gormDB, logger)
	historyService := history.NewService(historyRepo, logger)
	deliveryService, err := newDeliveryService(cfg, gormDB, reportService, historyRepo, logger)
	if err != nil {
		return err
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	reportHandler := report.NewHandlerWithRedis(reportService, rdb, logger)
	historyHandler := history.NewHandler(historyService, logger)
	deliveryHandler := delivery.NewHandler(deliveryService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.GET("/health", middleware.RateLimitByIP(5, 10), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	guards := []gin.HandlerFunc{
		middleware.AuthMiddleware(middleware.AuthConfig{
			Secret:         []byte(cfg.JWTSecret),
			AllowedDomains: cfg.AllowedEmailDomains,
		}),
		middleware.ContextLogger(logger),
	}

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, guards...)
		report.RegisterRoutes(api, reportHandler, rdb, guards...)
		history.RegisterRoutes(api, historyHandler, guards...)
		delivery.RegisterRoutes(api, deliveryHandler, guards...)
	}

	return nil
}
