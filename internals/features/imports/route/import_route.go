package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/configs"
	"clubapp_backend/internals/features/imports/controller"
	"clubapp_backend/internals/features/imports/service"
	"clubapp_backend/internals/middlewares"
)

func ImportRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.ImportHandler{
		Importer: &service.Importer{DB: db, Pivot: configs.SeasonPivotMonth},
	}

	imp := api.Group("/import", middlewares.ImportRateLimiter())
	imp.Post("/members", h.Members)
	imp.Post("/members-csv", h.Members) // legacy alias kept for old bookmarks
	imp.Post("/dues", h.Dues)
	imp.Post("/sessions", h.Sessions)
}
