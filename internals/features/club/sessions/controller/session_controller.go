package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/sessions/dto"
	"clubapp_backend/internals/features/club/sessions/model"
	helper "clubapp_backend/internals/helpers"
)

var validate = validator.New()

// Session dates in the UI are club-local days.
var parisLoc = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		return time.UTC
	}
	return loc
}()

type SessionHandler struct {
	DB *gorm.DB
}

// List (GET /api/sessions?team_id=|team_name=&date=YYYY-MM-DD)
// With a date the list is ascending (a day's agenda); otherwise newest first.
func (h *SessionHandler) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.SessionModel{})

	if v := c.Query("team_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "team_id invalide")
		}
		q = q.Where("team_id = ?", id)
	} else if name := c.Query("team_name"); name != "" {
		q = q.Where("team_id IN (SELECT id FROM teams WHERE name = ?)", name)
	}

	order := "starts_at DESC"
	if v := c.Query("date"); v != "" {
		day, err := time.ParseInLocation("2006-01-02", v, parisLoc)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date invalide (attendu YYYY-MM-DD)")
		}
		q = q.Where("starts_at >= ? AND starts_at < ?", day.UTC(), day.AddDate(0, 0, 1).UTC())
		order = "starts_at ASC"
	}

	var sessions []model.SessionModel
	if err := q.Order(order).Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonData(c, sessions)
}

// Create (POST /api/sessions)
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var in dto.SessionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "JSON invalide: "+err.Error())
	}
	in.Title = strings.TrimSpace(in.Title)
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "title et starts_at requis")
	}

	starts, err := time.Parse(time.RFC3339, in.StartsAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "starts_at invalide: "+err.Error())
	}

	s := model.SessionModel{
		TeamID:   in.TeamID,
		Title:    in.Title,
		StartsAt: starts.UTC(),
	}
	if err := h.DB.Create(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonData(c, s)
}
