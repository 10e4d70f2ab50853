package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"MissionControl/Assistant"
	"MissionControl/Controllers"
	"MissionControl/Ledger"
	"MissionControl/Models"
	"MissionControl/middleware"
)

func SetupRoutes(app *fiber.App, sync *Ledger.Synchronizer, assistant *Assistant.Client) {
	assignmentController := Controllers.NewAssignmentController(sync)

	app.Post("/api/Login", Controllers.Login)
	app.Post("/api/Logout", Controllers.Logout)
	app.Get("/api/validate-token", Controllers.ValidateToken)
	app.Get("/api/User", middleware.Verify(Models.PermissionAgent), Controllers.User)

	app.Get("/api/team", middleware.Verify(Models.PermissionAgent), Controllers.GetTeam)

	// Ledger routes. Reads and status updates are open to every operator;
	// create, edit and delete require admin.
	assignments := app.Group("/api/assignments", middleware.Verify(Models.PermissionAgent))
	assignments.Get("/", assignmentController.GetAssignments)
	assignments.Get("/stats", assignmentController.GetStats)
	assignments.Get("/export", assignmentController.ExportCSV)
	assignments.Get("/export/xlsx", assignmentController.ExportXLSX)
	assignments.Post("/", middleware.Verify(Models.PermissionAdmin), assignmentController.CreateAssignment)
	assignments.Get("/:id", assignmentController.GetAssignment)
	assignments.Put("/:id", middleware.Verify(Models.PermissionAdmin), assignmentController.UpdateAssignment)
	assignments.Post("/:id/status", assignmentController.UpdateStatus)
	assignments.Delete("/:id", middleware.Verify(Models.PermissionAdmin), assignmentController.DeleteAssignment)

	app.Get("/api/sync/status", middleware.Verify(Models.PermissionAgent), assignmentController.GetSyncStatus)
	app.Post("/api/sync/refresh", middleware.Verify(Models.PermissionAgent), assignmentController.ManualRefresh)

	Assistant.RegisterAssistantRoutes(app, assistant, middleware.Verify(Models.PermissionAgent))
}

func FiberConfig(sync *Ledger.Synchronizer, assistant *Assistant.Client) {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, sync, assistant)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
