package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/teams/dto"
	"clubapp_backend/internals/features/club/teams/model"
	helper "clubapp_backend/internals/helpers"
)

var validate = validator.New()

type TeamHandler struct {
	DB *gorm.DB
}

// List (GET /api/teams)
func (h *TeamHandler) List(c *fiber.Ctx) error {
	var teams []model.TeamModel
	if err := h.DB.Order("name").Find(&teams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonData(c, teams)
}

// Create (POST /api/teams) — explicit creation; imports create teams lazily
// but the UI also allows adding one up front.
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.TeamCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "JSON invalide: "+err.Error())
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var n int64
	if err := h.DB.Model(&model.TeamModel{}).Where("name = ?", in.Name).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "équipe déjà existante")
	}

	team := model.TeamModel{Name: in.Name}
	if err := h.DB.Create(&team).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, team)
}
