package routes

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/auth"
	"learnhub/backend/catalog"
	"learnhub/backend/controllers"
	"learnhub/backend/middleware"
	"learnhub/backend/progress"
)

func SetupRoutes(app *fiber.App, authSvc *auth.Service, cat *catalog.Catalog, tracker *progress.Tracker) {
	// Guards
	requireSession := middleware.RequireSession(authSvc)
	redirectIfLoggedIn := middleware.RedirectIfLoggedIn(authSvc)

	// Auth routes
	authController := controllers.NewAuthController(authSvc)
	app.Post("/api/auth/register", redirectIfLoggedIn, authController.Register)
	app.Post("/api/auth/login", redirectIfLoggedIn, authController.Login)
	app.Post("/api/auth/logout", authController.Logout)

	// User routes
	userController := controllers.NewUserController(authSvc)
	app.Get("/api/user/profile", requireSession, userController.GetProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(cat, tracker)
	courses := app.Group("/api/courses", requireSession)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)

	// Progress routes
	progressController := controllers.NewProgressController(cat, tracker)
	app.Get("/api/progress", requireSession, progressController.GetProgress)
	courses.Post("/:id/lessons/:lessonId/toggle", progressController.ToggleLesson)
	courses.Post("/:id/complete", progressController.MarkCourseComplete)

	// Overview routes
	overviewController := controllers.NewOverviewController(tracker)
	app.Get("/api/overview", requireSession, overviewController.GetOverview)
}
