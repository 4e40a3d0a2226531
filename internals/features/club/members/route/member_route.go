package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/members/controller"
)

func MemberRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.MemberHandler{DB: db}

	api.Get("/members", h.List)
}
