package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clubapp_backend/internals/features/club/attendance/dto"
	"clubapp_backend/internals/features/club/attendance/model"
	helper "clubapp_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceHandler struct {
	DB *gorm.DB
}

// List (GET /api/attendance?session_id=)
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	raw := c.Query("session_id")
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id requis")
	}
	sessionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id invalide")
	}

	var entries []dto.AttendanceEntry
	if err := h.DB.Model(&model.AttendanceModel{}).
		Select("member_id, present").
		Where("session_id = ?", sessionID).
		Scan(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if entries == nil {
		entries = []dto.AttendanceEntry{}
	}
	return helper.JsonData(c, entries)
}

// Upsert (POST /api/attendance) — insert or flip the present flag, the
// conflict target being the (session, member) pair.
func (h *AttendanceHandler) Upsert(c *fiber.Ctx) error {
	var in dto.AttendanceUpsertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "JSON invalide: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id, member_id, present requis")
	}

	row := model.AttendanceModel{
		SessionID: in.SessionID,
		MemberID:  in.MemberID,
		Present:   *in.Present,
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"present"}),
	}).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, nil)
}
