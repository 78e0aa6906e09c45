package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"talenthub/config"
	"talenthub/controllers"
	"talenthub/database"
	"talenthub/middleware"
	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	// Models
	users := models.NewUserModel(db)
	candidates := models.NewCandidateModel(db)
	jobs := models.NewJobModel(db)
	applications := models.NewApplicationModel(db)
	interviews := models.NewInterviewModel(db)
	teamMembers := models.NewTeamMemberModel(db)

	// Services
	jwtService := services.NewJWTService(cfg.JWTSecret, 24*time.Hour)
	emailService := services.NewEmailNotificationService(cfg.SMTP)
	searchService := services.NewSearchService()

	s3Service, err := services.NewS3Service(cfg.Storage)
	if err != nil {
		utils.LogWarn("file storage disabled", map[string]string{"reason": err.Error()})
		s3Service = nil
	}

	// Controllers
	authController := controllers.NewAuthController(users, jwtService)
	candidateController := controllers.NewCandidateController(candidates, s3Service)
	jobController := controllers.NewJobController(jobs)
	applicationController := controllers.NewApplicationController(applications, candidates, jobs)
	interviewController := controllers.NewInterviewController(interviews, candidates, emailService)
	searchController := controllers.NewSearchController(candidates, searchService)
	reportController := controllers.NewReportController(candidates, jobs, applications, interviews)
	teamController := controllers.NewTeamController(teamMembers, emailService, cfg.InviteBase)

	limiters := middleware.CreateRateLimiters()
	reportCache := middleware.NewResponseCache(2 * time.Minute)

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	// Content-Disposition carries the report export filename
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Disposition"}

	r := gin.Default()
	r.Use(cors.New(corsConfig))
	r.Use(middleware.MaxRequestSize(maxResumeBodySize))
	r.Use(middleware.SanitizeInput())

	auth := r.Group("/api/auth")
	auth.Use(limiters["auth"].Limit())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Invite acceptance happens before the invitee has an account
	r.POST("/api/team/accept", teamController.Accept)

	api := r.Group("/api")
	api.Use(limiters["general"].Limit())
	api.Use(middleware.ValidateJSON())
	api.Use(middleware.Auth(jwtService))
	api.Use(middleware.Subscription(users))
	api.Use(reportCache.InvalidateOnWrite())
	{
		api.GET("/auth/me", authController.Me)
		api.PUT("/auth/password", authController.ChangePassword)
		api.PUT("/auth/plan", authController.UpdatePlan)

		api.GET("/candidates", candidateController.List)
		api.POST("/candidates", candidateController.Create)
		api.GET("/candidates/:id", candidateController.Get)
		api.PUT("/candidates/:id", candidateController.Update)
		api.PATCH("/candidates/:id/status", candidateController.UpdateStatus)
		api.POST("/candidates/:id/contacted", candidateController.MarkContacted)
		api.POST("/candidates/:id/resume", candidateController.UploadResume)
		api.GET("/candidates/:id/resume", candidateController.DownloadResume)
		api.DELETE("/candidates/:id", candidateController.Delete)

		api.GET("/jobs", jobController.List)
		api.POST("/jobs", jobController.Create)
		api.GET("/jobs/:id", jobController.Get)
		api.PUT("/jobs/:id", jobController.Update)
		api.PATCH("/jobs/:id/status", jobController.UpdateStatus)
		api.GET("/jobs/:id/applications", applicationController.ListByJob)
		api.DELETE("/jobs/:id", jobController.Delete)

		api.GET("/applications", applicationController.List)
		api.POST("/applications", applicationController.Create)
		api.GET("/applications/:id", applicationController.Get)
		api.PATCH("/applications/:id/status", applicationController.UpdateStatus)
		api.PATCH("/applications/:id/notes", applicationController.UpdateNotes)
		api.DELETE("/applications/:id", applicationController.Delete)

		api.GET("/interviews", interviewController.List)
		api.POST("/interviews", interviewController.Create)
		api.GET("/interviews/:id", interviewController.Get)
		api.PUT("/interviews/:id", interviewController.Update)
		api.PATCH("/interviews/:id/status", interviewController.UpdateStatus)
		api.DELETE("/interviews/:id", interviewController.Delete)

		api.GET("/team", teamController.List)
		api.POST("/team/invite", teamController.Invite)
		api.PATCH("/team/:id", teamController.Update)
		api.DELETE("/team/:id", teamController.Delete)

		search := api.Group("")
		search.Use(limiters["search"].Limit())
		{
			search.GET("/search/candidates", searchController.SearchCandidates)
		}

		reports := api.Group("/reports")
		reports.Use(limiters["search"].Limit())
		reports.Use(middleware.RequireFeature(func(caps services.Capabilities) bool { return caps.Reports }, "reports"))
		{
			reports.GET("/dashboard", reportCache.Cache(), reportController.Dashboard)
			reports.GET("/export",
				middleware.RequireFeature(func(caps services.Capabilities) bool { return caps.Export }, "report export"),
				reportController.Export)
		}
	}

	utils.LogInfo("starting server", map[string]string{"port": cfg.Port, "environment": cfg.Environment})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// maxResumeBodySize leaves headroom above the 10 MB resume limit for the
// multipart framing.
const maxResumeBodySize = 12 << 20
