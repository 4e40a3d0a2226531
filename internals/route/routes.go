package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "clubapp_backend/internals/features/club/attendance/route"
	dueRoute "clubapp_backend/internals/features/club/dues/route"
	memberRoute "clubapp_backend/internals/features/club/members/route"
	sessionRoute "clubapp_backend/internals/features/club/sessions/route"
	teamRoute "clubapp_backend/internals/features/club/teams/route"
	importRoute "clubapp_backend/internals/features/imports/route"
	helper "clubapp_backend/internals/helpers"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== SANS DB =====================
	api.Get("/hello", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenue sur club-app 👋"})
	})
	api.Get("/health", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, fiber.Map{
			"status": "healthy",
			"ts":     time.Now().UTC().Format(time.RFC3339),
		})
	})
	api.Get("/env-check", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"hasDatabaseUrl": os.Getenv("DATABASE_URL") != ""})
	})

	api.Get("/db/health", func(c *fiber.Ctx) error {
		var row map[string]any
		if err := db.Raw("SELECT CURRENT_TIMESTAMP AS now").Scan(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, fiber.Map{"now": row["now"]})
	})

	// ===================== MÉTIER =====================
	log.Println("[INFO] Setting up club routes...")
	teamRoute.TeamRoutes(api, db)
	memberRoute.MemberRoutes(api, db)
	sessionRoute.SessionRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	dueRoute.DueRoutes(api, db)

	log.Println("[INFO] Setting up import routes...")
	importRoute.ImportRoutes(api, db)

	// 404 JSON pour tout le reste
	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "not found")
	})
}
