package app

import (
	"database/sql"
	"fmt"
	"log"

	"planboard/internal/config"
	"planboard/internal/handlers"
	"planboard/internal/middleware"
	"planboard/internal/pdf"
	"planboard/internal/repositories"
	"planboard/internal/routes"
	"planboard/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "planboard/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	projectRepo := repositories.NewProjectRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)
	memberRepo := repositories.NewTeamMemberRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	notifyService := services.NewNotifyService(cfg.Telegram.BotToken)

	projectService := services.NewProjectService(projectRepo, taskRepo, assignmentRepo, memberRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, memberRepo, assignmentRepo)
	resourceService := services.NewResourceService(resourceRepo)
	memberService := services.NewTeamMemberService(memberRepo, authService)
	assignmentService := services.NewAssignmentService(assignmentRepo, taskRepo, resourceRepo)

	// PDF generator needs a TTF with full latin coverage,
	// e.g. assets/fonts/DejaVuSans.ttf
	pdfGen := pdf.NewReportGenerator(cfg.Files.RootDir, cfg.Files.FontPath)

	reportService := services.NewReportService(
		projectRepo,
		taskRepo,
		resourceRepo,
		memberRepo,
		assignmentRepo,
		pdfGen,
		emailService,
	)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(memberService, authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService, notifyService, memberRepo)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	memberHandler := handlers.NewMemberHandler(memberService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes (JWT/RBAC wired inside SetupRoutes)
	routes.SetupRoutes(
		router,
		authHandler,
		projectHandler,
		taskHandler,
		resourceHandler,
		memberHandler,
		assignmentHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
