// Import/reconciliation core: resolves incoming spreadsheet rows against the
// existing teams/members and inserts or updates accordingly.
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	dueModel "clubapp_backend/internals/features/club/dues/model"
	memberModel "clubapp_backend/internals/features/club/members/model"
	sessionModel "clubapp_backend/internals/features/club/sessions/model"
	teamModel "clubapp_backend/internals/features/club/teams/model"
	importModel "clubapp_backend/internals/features/imports/model"
	"clubapp_backend/internals/features/imports/parser"
	"clubapp_backend/internals/features/imports/rowmap"
	helper "clubapp_backend/internals/helpers"
)

type Importer struct {
	DB    *gorm.DB
	Pivot time.Month
}

type MembersReport struct {
	TeamsCreated int `json:"teams_created"`
	Inserted     int `json:"inserted"`
	Updated      int `json:"updated"`
}

type DuesReport struct {
	Upserted       int    `json:"upserted"`
	MembersCreated int    `json:"members_created"`
	TeamsCreated   int    `json:"teams_created"`
	Season         string `json:"season"`
}

type SessionsReport struct {
	Inserted int `json:"inserted"`
}

// ImportMembers reconciles each row: team by name, member by
// email → member number → case-insensitive name pair. Rows run in their own
// transaction; the first failure aborts the batch and earlier rows stay.
func (im *Importer) ImportMembers(rows []parser.Row, mode string) (MembersReport, error) {
	var rep MembersReport

	for i, raw := range rows {
		rec, err := rowmap.MapMember(raw)
		if err != nil {
			return rep, fmt.Errorf("ligne %d: %w", i+1, err)
		}
		if rec == nil {
			continue
		}
		err = im.DB.Transaction(func(tx *gorm.DB) error {
			teamID, created, err := resolveTeam(tx, rec.TeamName)
			if err != nil {
				return err
			}
			if created {
				rep.TeamsCreated++
			}

			id, found, err := resolveMember(tx, rec.Email, rec.MemberNumber, rec.FirstName, rec.LastName)
			if err != nil {
				return err
			}

			if found {
				updates := map[string]any{
					"first_name":    rec.FirstName,
					"last_name":     rec.LastName,
					"email":         nilIfEmpty(rec.Email),
					"member_number": nilIfEmpty(rec.MemberNumber),
					"gender":        nilIfEmpty(rec.Gender),
					"team_id":       teamID,
				}
				if err := tx.Model(&memberModel.MemberModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
					return err
				}
				rep.Updated++
				return nil
			}

			m := memberModel.MemberModel{
				FirstName:    rec.FirstName,
				LastName:     rec.LastName,
				Email:        nilIfEmpty(rec.Email),
				MemberNumber: nilIfEmpty(rec.MemberNumber),
				Gender:       nilIfEmpty(rec.Gender),
				TeamID:       teamID,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			rep.Inserted++
			return nil
		})
		if err != nil {
			return rep, fmt.Errorf("ligne %d: %w", i+1, err)
		}
	}

	im.logImport("members", mode, len(rows), rep)
	return rep, nil
}

// ImportDues upserts one dues row per (member, season). The season of a row
// is the explicit column, else derived from paid_at/transfer_date, else the
// caller-supplied default.
func (im *Importer) ImportDues(rows []parser.Row, defaultSeason, mode string) (DuesReport, error) {
	rep := DuesReport{Season: defaultSeason}

	for i, raw := range rows {
		rec, err := rowmap.MapDues(raw)
		if err != nil {
			return rep, fmt.Errorf("ligne %d: %w", i+1, err)
		}
		if rec == nil {
			continue
		}

		season := helper.NormalizeSeasonLabel(rec.Season)
		if season == "" {
			if d := firstDate(rec.PaidAt, rec.TransferDate); d != nil {
				season = helper.SeasonLabel(*d, im.Pivot)
			} else {
				season = defaultSeason
			}
		}

		err = im.DB.Transaction(func(tx *gorm.DB) error {
			teamID, created, err := resolveTeam(tx, rec.TeamName)
			if err != nil {
				return err
			}
			if created {
				rep.TeamsCreated++
			}

			memberID, found, err := resolveMember(tx, rec.Email, rec.MemberNumber, rec.FirstName, rec.LastName)
			if err != nil {
				return err
			}
			if !found {
				m := memberModel.MemberModel{
					FirstName:    rec.FirstName,
					LastName:     rec.LastName,
					Email:        nilIfEmpty(rec.Email),
					MemberNumber: nilIfEmpty(rec.MemberNumber),
					TeamID:       teamID,
				}
				if err := tx.Create(&m).Error; err != nil {
					return err
				}
				memberID = m.ID
				rep.MembersCreated++
			} else if rec.TeamName != "" {
				if err := tx.Model(&memberModel.MemberModel{}).Where("id = ?", memberID).
					Update("team_id", teamID).Error; err != nil {
					return err
				}
			}

			fields := map[string]any{
				"payment_method":      nilIfEmpty(rec.PaymentMethod),
				"amount":              rec.Amount,
				"status":              nilIfEmpty(rec.Status),
				"paid_at":             rec.PaidAt,
				"transfer_date":       rec.TransferDate,
				"license_validated":   rec.LicenseValidated,
				"license_text":        nilIfEmpty(rec.LicenseText),
				"certificate_valid":   rec.CertificateValid,
				"t_shirt_size":        nilIfEmpty(rec.TShirtSize),
				"questionnaire_minor": rec.QuestionnaireMinor,
			}

			var existing dueModel.DueModel
			err = tx.Where("member_id = ? AND season = ?", memberID, season).Take(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&dueModel.DueModel{}).Where("id = ?", existing.ID).Updates(fields).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				due := dueModel.DueModel{
					MemberID:           memberID,
					Season:             season,
					PaymentMethod:      nilIfEmpty(rec.PaymentMethod),
					Amount:             rec.Amount,
					Status:             nilIfEmpty(rec.Status),
					PaidAt:             rec.PaidAt,
					TransferDate:       rec.TransferDate,
					LicenseValidated:   rec.LicenseValidated,
					LicenseText:        nilIfEmpty(rec.LicenseText),
					CertificateValid:   rec.CertificateValid,
					TShirtSize:         nilIfEmpty(rec.TShirtSize),
					QuestionnaireMinor: rec.QuestionnaireMinor,
				}
				if err := tx.Create(&due).Error; err != nil {
					return err
				}
			default:
				return err
			}
			rep.Upserted++
			return nil
		})
		if err != nil {
			return rep, fmt.Errorf("ligne %d: %w", i+1, err)
		}
	}

	im.logImport("dues", mode, len(rows), rep)
	return rep, nil
}

// ImportSessions inserts sessions, skipping exact (team, title, starts_at)
// duplicates. Teams referenced by name are created lazily like everywhere
// else.
func (im *Importer) ImportSessions(rows []parser.Row, mode string) (SessionsReport, error) {
	var rep SessionsReport

	for i, raw := range rows {
		rec, err := rowmap.MapSession(raw)
		if err != nil {
			return rep, fmt.Errorf("ligne %d: %w", i+1, err)
		}

		err = im.DB.Transaction(func(tx *gorm.DB) error {
			teamID, _, err := resolveTeam(tx, rec.TeamName)
			if err != nil {
				return err
			}

			q := tx.Model(&sessionModel.SessionModel{}).
				Where("title = ? AND starts_at = ?", rec.Title, rec.StartsAt)
			if teamID == nil {
				q = q.Where("team_id IS NULL")
			} else {
				q = q.Where("team_id = ?", *teamID)
			}
			var n int64
			if err := q.Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return nil // already registered, no update
			}

			s := sessionModel.SessionModel{
				TeamID:   teamID,
				Title:    rec.Title,
				StartsAt: rec.StartsAt,
			}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
			rep.Inserted++
			return nil
		})
		if err != nil {
			return rep, fmt.Errorf("ligne %d: %w", i+1, err)
		}
	}

	im.logImport("sessions", mode, len(rows), rep)
	return rep, nil
}

// resolveTeam looks a team up by exact name, creating it on first reference.
// Empty name means "no team context" and resolves to nil.
func resolveTeam(tx *gorm.DB, name string) (*int64, bool, error) {
	if name == "" {
		return nil, false, nil
	}
	var t teamModel.TeamModel
	err := tx.Where("name = ?", name).Take(&t).Error
	if err == nil {
		return &t.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	t = teamModel.TeamModel{Name: name}
	if err := tx.Create(&t).Error; err != nil {
		return nil, false, err
	}
	return &t.ID, true, nil
}

// resolveMember tries, in order: exact email, exact member number,
// case-insensitive (first, last) pair.
func resolveMember(tx *gorm.DB, email, number, first, last string) (int64, bool, error) {
	var m memberModel.MemberModel

	if email != "" {
		err := tx.Where("email = ?", email).Take(&m).Error
		if err == nil {
			return m.ID, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, err
		}
	}
	if number != "" {
		err := tx.Where("member_number = ?", number).Take(&m).Error
		if err == nil {
			return m.ID, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, err
		}
	}
	if first != "" || last != "" {
		err := tx.Where("LOWER(first_name) = ? AND LOWER(last_name) = ?",
			strings.ToLower(first), strings.ToLower(last)).Limit(1).Take(&m).Error
		if err == nil {
			return m.ID, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, err
		}
	}
	return 0, false, nil
}

// logImport appends the audit row. Failures only get logged server-side: the
// import itself already succeeded.
func (im *Importer) logImport(kind, mode string, total int, result any) {
	b, err := sonic.Marshal(result)
	if err != nil {
		return
	}
	entry := importModel.ImportLogModel{
		Kind:      kind,
		Mode:      mode,
		RowsTotal: total,
		Result:    b,
	}
	if err := im.DB.Create(&entry).Error; err != nil {
		log.Printf("[WARN] import log: %v", err)
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func firstDate(dates ...*time.Time) *time.Time {
	for _, d := range dates {
		if d != nil {
			return d
		}
	}
	return nil
}
