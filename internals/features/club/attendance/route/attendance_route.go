package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.AttendanceHandler{DB: db}

	api.Get("/attendance", h.List)
	api.Post("/attendance", h.Upsert)
}
