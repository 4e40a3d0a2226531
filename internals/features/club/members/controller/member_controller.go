package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/features/club/members/dto"
	helper "clubapp_backend/internals/helpers"
)

type MemberHandler struct {
	DB *gorm.DB
}

// List (GET /api/members?team_id=) — soft-deleted members never show up.
func (h *MemberHandler) List(c *fiber.Ctx) error {
	q := h.DB.Table("members m").
		Select("m.id, m.first_name, m.last_name, m.email, m.member_number, m.gender, m.created_at, t.name AS team_name").
		Joins("LEFT JOIN teams t ON t.id = m.team_id").
		Where("m.deleted = ?", false)

	if v := c.Query("team_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "team_id invalide")
		}
		q = q.Where("m.team_id = ?", id)
	}

	var members []dto.MemberWithTeam
	if err := q.Order("m.last_name, m.first_name").Scan(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if members == nil {
		members = []dto.MemberWithTeam{}
	}
	return helper.JsonData(c, members)
}
