package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/dues/controller"
)

func DueRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.DueHandler{DB: db}

	api.Get("/dues", h.List)
}
