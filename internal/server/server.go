package server

import (
	"log"
	"strings"
	"time"

	"github.com/Soriano-1807/ayudantech-backend/internal/config"
	"github.com/Soriano-1807/ayudantech-backend/internal/handler"
	"github.com/Soriano-1807/ayudantech-backend/internal/middleware"
	"github.com/Soriano-1807/ayudantech-backend/internal/repository"
	"github.com/Soriano-1807/ayudantech-backend/internal/service"
	"github.com/Soriano-1807/ayudantech-backend/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	evidenceStorage, err := storage.NewCloudinaryStorage(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryUploadFolder,
	)
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	adminRepo := repository.NewAdministratorRepository(db)
	assistantRepo := repository.NewAssistantRepository(db)
	supervisorRepo := repository.NewSupervisorRepository(db)

	authService := service.NewAuthService(adminRepo, assistantRepo, supervisorRepo)
	authHandler := handler.NewAuthHandler(authService)

	assistantService := service.NewAssistantService(assistantRepo)
	assistantHandler := handler.NewAssistantHandler(assistantService)

	supervisorService := service.NewSupervisorService(supervisorRepo)
	supervisorHandler := handler.NewSupervisorHandler(supervisorService)

	facultyRepo := repository.NewFacultyRepository(db)
	facultyService := service.NewFacultyService(facultyRepo)
	facultyHandler := handler.NewFacultyHandler(facultyService)

	positionRepo := repository.NewPositionRepository(db)
	assistantTypeRepo := repository.NewAssistantTypeRepository(db)
	positionService := service.NewPositionService(positionRepo, assistantTypeRepo)
	positionHandler := handler.NewPositionHandler(positionService)

	assistantshipRepo := repository.NewAssistantshipRepository(db)
	assistantshipService := service.NewAssistantshipService(assistantshipRepo)
	assistantshipHandler := handler.NewAssistantshipHandler(assistantshipService)

	periodRepo := repository.NewPeriodRepository(db)
	periodService := service.NewPeriodService(periodRepo)
	periodHandler := handler.NewPeriodHandler(periodService)

	activityRepo := repository.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, assistantshipRepo, periodRepo, evidenceStorage, redisClient, cfg.RateLimitUpload)
	activityHandler := handler.NewActivityHandler(activityService)

	approvalRepo := repository.NewApprovalRepository(db)
	approvalService := service.NewApprovalService(approvalRepo)
	approvalHandler := handler.NewApprovalHandler(approvalService)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "backend running"})
	})

	api := router.Group("/api")
	{
		api.POST("/administrators/login", authHandler.LoginAdministrator)

		api.POST("/assistants/login", authHandler.LoginAssistant)
		api.POST("/assistants", assistantHandler.Create)
		api.GET("/assistants", assistantHandler.GetAll)
		api.GET("/assistants/:cedula", assistantHandler.GetByID)
		api.GET("/assistants/email/:email", assistantHandler.GetByEmail)
		api.GET("/assistants/supervisor/:cedula", assistantHandler.GetBySupervisor)
		api.PUT("/assistants/:cedula", assistantHandler.Update)
		api.DELETE("/assistants/:cedula", assistantHandler.Delete)

		api.POST("/supervisors/login", authHandler.LoginSupervisor)
		api.POST("/supervisors", supervisorHandler.Create)
		api.GET("/supervisors", supervisorHandler.GetAll)
		api.GET("/supervisors/:cedula", supervisorHandler.GetByID)
		api.GET("/supervisors/email/:email", supervisorHandler.GetByEmail)
		api.PUT("/supervisors/:cedula", supervisorHandler.Update)
		api.DELETE("/supervisors/:cedula", supervisorHandler.Delete)

		api.GET("/faculties", facultyHandler.GetAll)
		api.GET("/faculties/:name/careers", facultyHandler.GetCareers)

		api.POST("/positions", positionHandler.Create)
		api.GET("/positions", positionHandler.GetAll)
		api.GET("/positions/:name", positionHandler.GetByName)
		api.PUT("/positions/:name", positionHandler.Rename)
		api.DELETE("/positions/:name", positionHandler.Delete)
		api.GET("/assistant-types", positionHandler.GetAssistantTypes)

		api.POST("/assistantships", assistantshipHandler.Create)
		api.GET("/assistantships", assistantshipHandler.GetAll)
		api.GET("/assistantships/assistant/:cedula", assistantshipHandler.GetByAssistant)
		api.GET("/assistantships/supervisor/:cedula", assistantshipHandler.GetBySupervisor)
		api.PUT("/assistantships/:id/objective", assistantshipHandler.SetObjective)
		api.DELETE("/assistantships/:id", assistantshipHandler.Delete)

		api.POST("/periods", periodHandler.Create)
		api.GET("/periods", periodHandler.GetAll)
		api.GET("/periods/current", periodHandler.GetCurrent)
		api.PUT("/periods/:name/current", periodHandler.SetCurrent)
		api.DELETE("/periods/:name", periodHandler.Delete)

		api.POST("/activities", activityHandler.Create)
		api.GET("/activities", activityHandler.GetAll)
		api.GET("/activities/assistant/:cedula", activityHandler.GetByAssistant)
		api.GET("/activities/assistantship/:id", activityHandler.GetByAssistantship)
		api.GET("/activities/assistantship/:id/current", activityHandler.GetByAssistantshipCurrentPeriod)
		api.PUT("/activities/:id", activityHandler.Update)
		api.DELETE("/activities/:id", activityHandler.Delete)

		api.POST("/approvals", approvalHandler.Create)
		api.GET("/approvals/period/:name", approvalHandler.GetByPeriod)
		api.GET("/approvals/assistantship/:id", approvalHandler.GetPeriodByAssistantship)
		api.GET("/approvals/details", approvalHandler.GetApprovedDetails)

		api.GET("/approval-window", approvalHandler.GetWindow)
		api.PUT("/approval-window", approvalHandler.SetWindow)

		api.POST("/uploads/evidence", activityHandler.UploadEvidence)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
