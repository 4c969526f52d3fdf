// Package routes defines the API routing configuration.
// It wires repositories into services and services into handlers, and
// sets up all HTTP routes with their middleware.
package routes

import (
	"trustlance/internal/handlers"
	"trustlance/internal/middleware"
	"trustlance/internal/models"
	"trustlance/internal/repositories"
	"trustlance/internal/services/auth"
	"trustlance/internal/services/dashboard"
	"trustlance/internal/services/dispute"
	"trustlance/internal/services/escrow"
	"trustlance/internal/services/message"
	"trustlance/internal/services/project"
	"trustlance/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	projectRepo := repositories.NewProjectRepository(db, repositories.CacheService)
	disputeRepo := repositories.NewDisputeRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	projectService := project.NewService(projectRepo, disputeRepo, userRepo)
	escrowService := escrow.NewService(projectRepo)
	disputeService := dispute.NewService(disputeRepo, projectRepo)
	messageService := message.NewService(messageRepo, projectRepo, userRepo)
	dashboardService := dashboard.NewService(projectRepo, disputeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	milestoneHandler := handlers.NewMilestoneHandler(escrowService)
	disputeHandler := handlers.NewDisputeHandler(disputeService)
	messageHandler := handlers.NewMessageHandler(messageService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, userService)
	adminHandler := handlers.NewAdminHandler(userService)

	app.Get("/", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", authHandler.RegisterUser)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.LogoutUser)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)

	// Project routes
	projects := protected.Group("/projects")
	projects.Post("/", middleware.HasPermission(models.PermissionProjectCreate), projectHandler.CreateProject)
	projects.Get("/", middleware.HasPermission(models.PermissionProjectRead), projectHandler.ListProjects)
	projects.Get("/:id", middleware.HasPermission(models.PermissionProjectRead), projectHandler.GetProject)
	projects.Post("/:id/assign", middleware.HasPermission(models.PermissionProjectAssign), projectHandler.AssignFreelancer)

	// Milestone transitions
	projects.Post("/:id/milestones/:milestoneId/start", middleware.HasPermission(models.PermissionMilestoneSubmit), milestoneHandler.StartMilestone)
	projects.Post("/:id/milestones/:milestoneId/submit", middleware.HasPermission(models.PermissionMilestoneSubmit), milestoneHandler.SubmitMilestone)
	projects.Post("/:id/milestones/:milestoneId/approve", middleware.HasPermission(models.PermissionMilestoneReview), milestoneHandler.ApproveMilestone)
	projects.Post("/:id/milestones/:milestoneId/reject", middleware.HasPermission(models.PermissionMilestoneReview), milestoneHandler.RejectMilestone)

	// Dispute and chat routes scoped to a project
	projects.Get("/:id/disputes", disputeHandler.GetProjectDisputes)
	projects.Post("/:id/messages", middleware.HasPermission(models.PermissionMessageWrite), messageHandler.SendMessage)
	projects.Get("/:id/messages", messageHandler.GetProjectMessages)

	// Dispute routes
	disputes := protected.Group("/disputes")
	disputes.Post("/", middleware.HasPermission(models.PermissionDisputeRaise), disputeHandler.RaiseDispute)

	// Admin routes
	admin := protected.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Get("/users", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.GetUsersPaginated)
	admin.Get("/disputes", disputeHandler.GetActiveDisputes)
	admin.Get("/disputes/resolved", disputeHandler.GetResolvedDisputes)
	admin.Post("/disputes/:id/resolve", middleware.HasPermission(models.PermissionDisputeResolve), disputeHandler.ResolveDispute)
}
