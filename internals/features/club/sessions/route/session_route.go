package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/sessions/controller"
)

func SessionRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.SessionHandler{DB: db}

	api.Get("/sessions", h.List)
	api.Post("/sessions", h.Create)
}
