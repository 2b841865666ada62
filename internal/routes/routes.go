package routes

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/authz"
	"planboard/internal/handlers"
	"planboard/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	resourceHandler *handlers.ResourceHandler,
	memberHandler *handlers.MemberHandler,
	assignmentHandler *handlers.AssignmentHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.ReadOnlyGuard())

	// PROJECTS
	projects := r.Group("/projects")
	{
		projects.POST("/", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin), projectHandler.Create)
		projects.GET("/", projectHandler.GetAll)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PUT("/:id", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin), projectHandler.Update)
		projects.DELETE("/:id", middleware.RequireRoles(authz.RoleAdmin), projectHandler.Delete)
		projects.POST("/:id/status", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin), projectHandler.ChangeStatus)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/", taskHandler.GetAll)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin), taskHandler.Delete)
		tasks.POST("/:id/progress", taskHandler.UpdateProgress)
		tasks.POST("/:id/assign", taskHandler.Assign)
	}

	// RESOURCES
	resources := r.Group("/resources")
	{
		resources.POST("/", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin), resourceHandler.Create)
		resources.GET("/", resourceHandler.GetAll)
		resources.GET("/:id", resourceHandler.GetByID)
		resources.PUT("/:id", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin), resourceHandler.Update)
		resources.DELETE("/:id", middleware.RequireRoles(authz.RoleAdmin), resourceHandler.Delete)
	}

	// MEMBERS (Admin manages accounts)
	members := r.Group("/members")
	{
		members.POST("/", middleware.RequireRoles(authz.RoleAdmin), memberHandler.Create)
		members.GET("/", memberHandler.GetAll)
		members.GET("/:id", memberHandler.GetByID)
		members.PUT("/:id", middleware.RequireRoles(authz.RoleAdmin), memberHandler.Update)
		members.DELETE("/:id", middleware.RequireRoles(authz.RoleAdmin), memberHandler.Delete)
	}

	// ASSIGNMENTS
	assignments := r.Group("/assignments")
	{
		assignments.POST("/", assignmentHandler.Create)
		assignments.GET("/", assignmentHandler.GetAll)
		assignments.GET("/:id", assignmentHandler.GetByID)
		assignments.PUT("/:id", assignmentHandler.Update)
		assignments.DELETE("/:id", assignmentHandler.Delete)
		assignments.POST("/check-conflicts", assignmentHandler.CheckConflicts)
	}

	// REPORTS (summary open to every authenticated role, the rest manager/admin)
	r.GET("/reports/summary", reportHandler.Summary)
	reports := r.Group("/reports", middleware.RequireRoles(authz.RoleManager, authz.RoleAdmin))
	{
		reports.GET("/projects/:id", reportHandler.ProjectReport)
		reports.GET("/utilization", reportHandler.Utilization)
		reports.GET("/overallocation", reportHandler.OverAllocation)
		reports.GET("/workload", reportHandler.Workload)
		reports.GET("/projects/:id/pdf", reportHandler.ProjectPDF)
		reports.GET("/workload/pdf", reportHandler.WorkloadPDF)
		reports.POST("/overallocation/notify", reportHandler.NotifyOverAllocation)
	}

	return r
}
