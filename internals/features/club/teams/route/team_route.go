package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/teams/controller"
)

func TeamRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.TeamHandler{DB: db}

	api.Get("/teams", h.List)
	api.Post("/teams", h.Create)
}
