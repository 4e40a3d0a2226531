package rowmap

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubapp_backend/internals/features/imports/parser"
)

func TestNormBool(t *testing.T) {
	trues := []string{"1", "true", "VRAI", "Oui", "yes", "Y", "x", " oui "}
	for _, s := range trues {
		b := NormBool(s)
		require.NotNil(t, b, s)
		assert.True(t, *b, s)
	}
	falses := []string{"0", "false", "FAUX", "Non", "no", "N"}
	for _, s := range falses {
		b := NormBool(s)
		require.NotNil(t, b, s)
		assert.False(t, *b, s)
	}
	// anything else is indeterminate, never false, never a panic
	for _, s := range []string{"", "  ", "peut-être", "2", "ja", "✓"} {
		assert.Nil(t, NormBool(s), s)
	}
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Ines Silva")
	assert.Equal(t, "Ines", first)
	assert.Equal(t, "Silva", last)

	first, last = SplitName("Madonna")
	assert.Equal(t, "Madonna", first)
	assert.Equal(t, "", last)

	first, last = SplitName("  Jean  Claude   Van Damme ")
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Claude Van Damme", last)

	first, last = SplitName("")
	assert.Equal(t, "", first)
	assert.Equal(t, "", last)
}

func TestMapMemberAliases(t *testing.T) {
	m, err := MapMember(parser.Row{
		"Prenom":            "Ana",
		"Nom":               "Dupont",
		"Email":             " Ana@X.com ",
		"Equipe/département": "U15",
		"N° de maillot":      "42",
		"Genre":             "F",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Ana", m.FirstName)
	assert.Equal(t, "Dupont", m.LastName)
	assert.Equal(t, "ana@x.com", m.Email)
	assert.Equal(t, "U15", m.TeamName)
	assert.Equal(t, "42", m.MemberNumber)
	assert.Equal(t, "f", m.Gender)
}

func TestMapMemberAliasPriority(t *testing.T) {
	// "E-mail" wins over "E-mail 2" when both are present.
	m, err := MapMember(parser.Row{
		"Prénom":   "Luc",
		"Nom":      "Martin",
		"E-mail":   "luc@x.com",
		"E-mail 2": "autre@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "luc@x.com", m.Email)
}

func TestMapMemberFullNameFallback(t *testing.T) {
	m, err := MapMember(parser.Row{"Nom d'utilisateur": "Ines Silva"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Ines", m.FirstName)
	assert.Equal(t, "Silva", m.LastName)

	// the fallback only applies when both name columns are empty
	m, err = MapMember(parser.Row{"Prénom": "Ana", "Nom d'utilisateur": "Ines Silva"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", m.FirstName)
	assert.Equal(t, "", m.LastName)
}

func TestMapMemberSkipsNamelessRows(t *testing.T) {
	m, err := MapMember(parser.Row{"E-mail": "x@y.z", "Genre": "f"})
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMapMemberTrimsJSONKeys(t *testing.T) {
	m, err := MapMember(parser.Row{" Prénom ": "Ana", " Nom ": "Dupont"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Ana", m.FirstName)
}

func TestMapDuesAmountDecimalComma(t *testing.T) {
	d, err := MapDues(parser.Row{"Nom": "Dupont", "Montant": "120,50"})
	require.NoError(t, err)
	require.NotNil(t, d.Amount)
	assert.InDelta(t, 120.50, *d.Amount, 0.001)

	d, err = MapDues(parser.Row{"Nom": "Dupont", "Montant": "90 €"})
	require.NoError(t, err)
	require.NotNil(t, d.Amount)
	assert.InDelta(t, 90.0, *d.Amount, 0.001)

	_, err = MapDues(parser.Row{"Nom": "Dupont", "Montant": "cent"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestMapDuesDates(t *testing.T) {
	d, err := MapDues(parser.Row{
		"Nom":              "Dupont",
		"Date de paiement": "2025-09-10",
		"Date de virement": "10/09/2025",
	})
	require.NoError(t, err)
	require.NotNil(t, d.PaidAt)
	require.NotNil(t, d.TransferDate)
	assert.Equal(t, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), *d.PaidAt)
	assert.Equal(t, *d.PaidAt, *d.TransferDate)

	// empty date cells stay nil rather than zero time
	d, err = MapDues(parser.Row{"Nom": "Dupont", "Date de paiement": ""})
	require.NoError(t, err)
	assert.Nil(t, d.PaidAt)

	_, err = MapDues(parser.Row{"Nom": "Dupont", "Date de paiement": "hier"})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestMapDuesBooleansStayTriState(t *testing.T) {
	d, err := MapDues(parser.Row{
		"Nom":               "Dupont",
		"Licence validée":   "oui",
		"Certificat médical": "???",
	})
	require.NoError(t, err)
	require.NotNil(t, d.LicenseValidated)
	assert.True(t, *d.LicenseValidated)
	assert.Nil(t, d.CertificateValid)
	assert.Nil(t, d.QuestionnaireMinor)
}

func TestMapSession(t *testing.T) {
	s, err := MapSession(parser.Row{
		"Titre":  "Entraînement",
		"Date":   "2025-09-10T18:00:00Z",
		"Équipe": "U15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Entraînement", s.Title)
	assert.Equal(t, "U15", s.TeamName)
	assert.Equal(t, time.Date(2025, 9, 10, 18, 0, 0, 0, time.UTC), s.StartsAt)

	_, err = MapSession(parser.Row{"Date": "2025-09-10"})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = MapSession(parser.Row{"Titre": "Entraînement"})
	assert.True(t, errors.Is(err, ErrValidation))
}
