package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"clubapp_backend/internals/features/imports/parser"
	"clubapp_backend/internals/features/imports/rowmap"
	"clubapp_backend/internals/features/imports/service"
	helper "clubapp_backend/internals/helpers"
)

const noRowsHint = "Aucune donnée détectée. Envoyez soit { rows:[...] } en JSON, soit du tableau brut (text/csv ou text/plain)."

type ImportHandler struct {
	Importer *service.Importer
}

type importBody struct {
	Rows   []map[string]any `json:"rows"`
	Season string           `json:"season"`
}

// readRows reads the body by Content-Type: explicit JSON must parse, explicit
// text goes straight to the table parser, anything else tries JSON first and
// falls back to raw text.
func readRows(c *fiber.Ctx) (rows []parser.Row, season, mode string, err error) {
	raw := c.Body()
	ctype := strings.ToLower(c.Get(fiber.HeaderContentType))

	parseJSON := func() (importBody, error) {
		var body importBody
		if len(raw) == 0 {
			return body, nil
		}
		return body, sonic.Unmarshal(raw, &body)
	}

	switch {
	case strings.Contains(ctype, "application/json"):
		body, jerr := parseJSON()
		if jerr != nil {
			return nil, "", "", errors.New("JSON invalide: " + jerr.Error())
		}
		return jsonRows(body.Rows), body.Season, "json", nil

	case strings.Contains(ctype, "text/plain"), strings.Contains(ctype, "text/csv"):
		return parser.Parse(string(raw)), "", "table", nil

	default:
		if body, jerr := parseJSON(); jerr == nil && len(body.Rows) > 0 {
			return jsonRows(body.Rows), body.Season, "json", nil
		}
		return parser.Parse(string(raw)), "", "table", nil
	}
}

// jsonRows flattens JSON row objects to the same string map the table parser
// produces; numbers and booleans are stringified so the alias lookup applies
// uniformly.
func jsonRows(in []map[string]any) []parser.Row {
	rows := make([]parser.Row, 0, len(in))
	for _, src := range in {
		row := make(parser.Row, len(src))
		for k, v := range src {
			switch t := v.(type) {
			case nil:
				row[k] = ""
			case string:
				row[k] = t
			case bool:
				row[k] = strconv.FormatBool(t)
			case float64:
				row[k] = strconv.FormatFloat(t, 'f', -1, 64)
			default:
				b, _ := sonic.Marshal(t)
				row[k] = string(b)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func importError(c *fiber.Ctx, err error) error {
	if errors.Is(err, rowmap.ErrValidation) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// Members (POST /api/import/members)
func (h *ImportHandler) Members(c *fiber.Ctx) error {
	rows, _, mode, err := readRows(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, noRowsHint)
	}

	rep, err := h.Importer.ImportMembers(rows, mode)
	if err != nil {
		return importError(c, err)
	}
	return helper.JsonOK(c, fiber.Map{
		"mode":          mode,
		"teams_created": rep.TeamsCreated,
		"inserted":      rep.Inserted,
		"updated":       rep.Updated,
	})
}

// Dues (POST /api/import/dues)
func (h *ImportHandler) Dues(c *fiber.Ctx) error {
	rows, season, mode, err := readRows(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, noRowsHint)
	}

	defaultSeason := helper.NormalizeSeasonLabel(season)
	if defaultSeason == "" {
		defaultSeason = helper.CurrentSeason(time.Now().UTC(), h.Importer.Pivot)
	}

	rep, err := h.Importer.ImportDues(rows, defaultSeason, mode)
	if err != nil {
		return importError(c, err)
	}
	return helper.JsonOK(c, fiber.Map{
		"mode":            mode,
		"upserted":        rep.Upserted,
		"members_created": rep.MembersCreated,
		"teams_created":   rep.TeamsCreated,
		"season":          rep.Season,
	})
}

// Sessions (POST /api/import/sessions)
func (h *ImportHandler) Sessions(c *fiber.Ctx) error {
	rows, _, mode, err := readRows(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, noRowsHint)
	}

	rep, err := h.Importer.ImportSessions(rows, mode)
	if err != nil {
		return importError(c, err)
	}
	return helper.JsonOK(c, fiber.Map{
		"mode":     mode,
		"inserted": rep.Inserted,
	})
}
