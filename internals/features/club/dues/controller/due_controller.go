package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubapp_backend/internals/configs"
	"clubapp_backend/internals/features/club/dues/dto"
	helper "clubapp_backend/internals/helpers"
)

type DueHandler struct {
	DB *gorm.DB
}

// Statuses a due can carry and still count as settled for the season.
const settledStatuses = "('paid','payé','paye','exempt','exonéré','exonere','ok')"

// List (GET /api/dues?team_id=&season=) — the season roster. A member is
// paid for the season when one of their settled dues has an effective date
// (paid_at, else transfer_date, else created_at) inside the season bounds.
func (h *DueHandler) List(c *fiber.Ctx) error {
	pivot := configs.SeasonPivotMonth

	season := helper.NormalizeSeasonLabel(c.Query("season"))
	if season == "" {
		season = helper.CurrentSeason(time.Now().UTC(), pivot)
	}
	start, end, err := helper.SeasonBounds(season, pivot)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sql := `
		SELECT m.id AS member_id, m.first_name, m.last_name, m.email, m.member_number,
		       t.name AS team_name,
		       EXISTS (
		           SELECT 1 FROM dues d
		           WHERE d.member_id = m.id
		             AND LOWER(COALESCE(d.status, '')) IN ` + settledStatuses + `
		             AND COALESCE(d.paid_at, d.transfer_date, d.created_at) BETWEEN ? AND ?
		       ) AS paid_this_season
		FROM members m
		LEFT JOIN teams t ON t.id = m.team_id
		WHERE m.deleted = ?`
	args := []any{start, end, false}

	if v := c.Query("team_id"); v != "" {
		id, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "team_id invalide")
		}
		sql += " AND m.team_id = ?"
		args = append(args, id)
	}
	sql += " ORDER BY m.last_name, m.first_name"

	var rows []dto.DuesStatus
	if err := h.DB.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if rows == nil {
		rows = []dto.DuesStatus{}
	}

	return helper.JsonOK(c, fiber.Map{
		"data":   rows,
		"season": season,
		"start":  start,
		"end":    end,
	})
}
