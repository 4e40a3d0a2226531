package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceModel "clubapp_backend/internals/features/club/attendance/model"
	dueModel "clubapp_backend/internals/features/club/dues/model"
	memberModel "clubapp_backend/internals/features/club/members/model"
	sessionModel "clubapp_backend/internals/features/club/sessions/model"
	teamModel "clubapp_backend/internals/features/club/teams/model"
	importModel "clubapp_backend/internals/features/imports/model"
	"clubapp_backend/internals/features/imports/parser"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&teamModel.TeamModel{},
		&memberModel.MemberModel{},
		&sessionModel.SessionModel{},
		&attendanceModel.AttendanceModel{},
		&dueModel.DueModel{},
		&importModel.ImportLogModel{},
	))
	return db
}

func newImporter(t *testing.T) *Importer {
	return &Importer{DB: newTestDB(t), Pivot: time.August}
}

func TestImportMembersIdempotent(t *testing.T) {
	im := newImporter(t)
	rows := []parser.Row{{"Prénom": "Ana", "Nom": "Dupont", "E-mail": "ana@x.com", "Équipe": "U15"}}

	rep, err := im.ImportMembers(rows, "table")
	require.NoError(t, err)
	assert.Equal(t, MembersReport{TeamsCreated: 1, Inserted: 1, Updated: 0}, rep)

	rep, err = im.ImportMembers(rows, "table")
	require.NoError(t, err)
	assert.Equal(t, MembersReport{TeamsCreated: 0, Inserted: 0, Updated: 1}, rep)

	var n int64
	require.NoError(t, im.DB.Model(&memberModel.MemberModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestImportMembersIdentityPriority(t *testing.T) {
	im := newImporter(t)

	_, err := im.ImportMembers([]parser.Row{
		{"Prénom": "Ana", "Nom": "Dupont", "E-mail": "ana@x.com", "Numéro de athlète": "7"},
	}, "table")
	require.NoError(t, err)

	// same email but new number and new spelling → matched by email, updated
	rep, err := im.ImportMembers([]parser.Row{
		{"Prénom": "ANA", "Nom": "DUPONT", "E-mail": "ana@x.com", "Numéro de athlète": "99"},
	}, "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Updated)

	var m memberModel.MemberModel
	require.NoError(t, im.DB.Take(&m).Error)
	assert.Equal(t, "ANA", m.FirstName)
	require.NotNil(t, m.MemberNumber)
	assert.Equal(t, "99", *m.MemberNumber)

	// no email → matched by member number
	rep, err = im.ImportMembers([]parser.Row{
		{"Prénom": "Blaise", "Nom": "Personne", "Numéro de athlète": "99"},
	}, "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Updated)
	assert.Equal(t, 0, rep.Inserted)

	// no email, no number → matched by case-insensitive name pair
	rep, err = im.ImportMembers([]parser.Row{
		{"Prénom": "blaise", "Nom": "PERSONNE"},
	}, "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Updated)
	assert.Equal(t, 0, rep.Inserted)
}

func TestImportMembersSkipsNamelessRows(t *testing.T) {
	im := newImporter(t)
	rep, err := im.ImportMembers([]parser.Row{
		{"E-mail": "orphan@x.com"},
		{"Prénom": "Luc", "Nom": "Martin"},
	}, "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Inserted)

	var n int64
	require.NoError(t, im.DB.Model(&memberModel.MemberModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestImportMembersOverwritesTeam(t *testing.T) {
	im := newImporter(t)

	_, err := im.ImportMembers([]parser.Row{{"Prénom": "Ana", "Nom": "Dupont", "Équipe": "U15"}}, "table")
	require.NoError(t, err)

	// re-import without a team column → team_id reset to NULL
	_, err = im.ImportMembers([]parser.Row{{"Prénom": "Ana", "Nom": "Dupont"}}, "table")
	require.NoError(t, err)

	var m memberModel.MemberModel
	require.NoError(t, im.DB.Take(&m).Error)
	assert.Nil(t, m.TeamID)
}

func TestImportMembersTeamNameIsCaseSensitive(t *testing.T) {
	im := newImporter(t)
	rep, err := im.ImportMembers([]parser.Row{
		{"Prénom": "A", "Nom": "B", "Équipe": "U15"},
		{"Prénom": "C", "Nom": "D", "Équipe": "u15"},
	}, "table")
	require.NoError(t, err)
	assert.Equal(t, 2, rep.TeamsCreated)
}

func TestImportDuesUpsertPerSeason(t *testing.T) {
	im := newImporter(t)
	rows := []parser.Row{{
		"Prénom":           "Ana",
		"Nom":              "Dupont",
		"E-mail":           "ana@x.com",
		"Montant":          "120,50",
		"Statut":           "payé",
		"Date de paiement": "2025-09-10",
	}}

	rep, err := im.ImportDues(rows, "2025/2026", "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Upserted)
	assert.Equal(t, 1, rep.MembersCreated)

	// second import of the same row updates the same due in place
	rep, err = im.ImportDues(rows, "2025/2026", "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Upserted)
	assert.Equal(t, 0, rep.MembersCreated)

	var dues []dueModel.DueModel
	require.NoError(t, im.DB.Find(&dues).Error)
	require.Len(t, dues, 1)
	assert.Equal(t, "2025/2026", dues[0].Season)
	require.NotNil(t, dues[0].Amount)
	assert.InDelta(t, 120.50, *dues[0].Amount, 0.001)
}

func TestImportDuesSeasonDerivedFromPaidAt(t *testing.T) {
	im := newImporter(t)
	rows := []parser.Row{{
		"Prénom":           "Ana",
		"Nom":              "Dupont",
		"Date de paiement": "2024-10-01",
	}}
	_, err := im.ImportDues(rows, "2025/2026", "table")
	require.NoError(t, err)

	var due dueModel.DueModel
	require.NoError(t, im.DB.Take(&due).Error)
	assert.Equal(t, "2024/2025", due.Season)
}

func TestImportDuesExplicitSeasonColumnWins(t *testing.T) {
	im := newImporter(t)
	rows := []parser.Row{{
		"Prénom":           "Ana",
		"Nom":              "Dupont",
		"Saison":           "2023-2024",
		"Date de paiement": "2024-10-01",
	}}
	_, err := im.ImportDues(rows, "2025/2026", "table")
	require.NoError(t, err)

	var due dueModel.DueModel
	require.NoError(t, im.DB.Take(&due).Error)
	assert.Equal(t, "2023/2024", due.Season)
}

func TestImportDuesDefaultSeasonFallback(t *testing.T) {
	im := newImporter(t)
	_, err := im.ImportDues([]parser.Row{{"Prénom": "Ana", "Nom": "Dupont"}}, "2025/2026", "table")
	require.NoError(t, err)

	var due dueModel.DueModel
	require.NoError(t, im.DB.Take(&due).Error)
	assert.Equal(t, "2025/2026", due.Season)
}

func TestImportDuesSameMemberTwoSeasons(t *testing.T) {
	im := newImporter(t)
	_, err := im.ImportDues([]parser.Row{{"Prénom": "Ana", "Nom": "Dupont", "Saison": "2024/2025"}}, "x/y-not-used", "table")
	require.NoError(t, err)
	_, err = im.ImportDues([]parser.Row{{"Prénom": "Ana", "Nom": "Dupont", "Saison": "2025/2026"}}, "x/y-not-used", "table")
	require.NoError(t, err)

	var members, dues int64
	require.NoError(t, im.DB.Model(&memberModel.MemberModel{}).Count(&members).Error)
	require.NoError(t, im.DB.Model(&dueModel.DueModel{}).Count(&dues).Error)
	assert.EqualValues(t, 1, members)
	assert.EqualValues(t, 2, dues)
}

func TestImportSessionsDedupe(t *testing.T) {
	im := newImporter(t)
	rows := []parser.Row{{"Titre": "Entraînement", "Date": "2025-09-10T18:00:00Z", "Équipe": "U15"}}

	rep, err := im.ImportSessions(rows, "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Inserted)

	rep, err = im.ImportSessions(rows, "table")
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Inserted)

	// same title+time but no team → a distinct session
	rep, err = im.ImportSessions([]parser.Row{{"Titre": "Entraînement", "Date": "2025-09-10T18:00:00Z"}}, "table")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Inserted)
}

func TestImportWritesAuditLog(t *testing.T) {
	im := newImporter(t)
	_, err := im.ImportMembers([]parser.Row{{"Prénom": "Ana", "Nom": "Dupont"}}, "json")
	require.NoError(t, err)

	var entry importModel.ImportLogModel
	require.NoError(t, im.DB.Take(&entry).Error)
	assert.Equal(t, "members", entry.Kind)
	assert.Equal(t, "json", entry.Mode)
	assert.Equal(t, 1, entry.RowsTotal)
	assert.Contains(t, string(entry.Result), "\"inserted\":1")
}

func TestImportMembersValidationErrorCarriesRowNumber(t *testing.T) {
	im := newImporter(t)
	_, err := im.ImportDues([]parser.Row{
		{"Prénom": "Ana", "Nom": "Dupont"},
		{"Prénom": "Luc", "Nom": "Martin", "Montant": "beaucoup"},
	}, "2025/2026", "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ligne 2")
}
