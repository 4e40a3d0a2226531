// Maps the loosely-named spreadsheet columns onto canonical fields.
// Header-variant knowledge lives in one data table so a new export format
// only ever means adding an alias.
package rowmap

import (
	"strings"

	"clubapp_backend/internals/features/imports/parser"
)

type Field string

const (
	FieldFirstName          Field = "first_name"
	FieldLastName           Field = "last_name"
	FieldFullName           Field = "full_name"
	FieldEmail              Field = "email"
	FieldTeam               Field = "team"
	FieldMemberNumber       Field = "member_number"
	FieldGender             Field = "gender"
	FieldSeason             Field = "season"
	FieldPaymentMethod      Field = "payment_method"
	FieldAmount             Field = "amount"
	FieldStatus             Field = "status"
	FieldPaidAt             Field = "paid_at"
	FieldTransferDate       Field = "transfer_date"
	FieldLicenseValidated   Field = "license_validated"
	FieldLicenseText        Field = "license_text"
	FieldCertificateValid   Field = "certificate_valid"
	FieldTShirtSize         Field = "t_shirt_size"
	FieldQuestionnaireMinor Field = "questionnaire_minor"
	FieldTitle              Field = "title"
	FieldStartsAt           Field = "starts_at"
)

// fieldAliases lists, per canonical field, the accepted source headers in
// priority order. These are the spellings seen in the real exports
// (HelloAsso / federation / spreadsheet copies), accents and all.
var fieldAliases = map[Field][]string{
	FieldFirstName:    {"Prénom", "Prenom"},
	FieldLastName:     {"Nom de famille", "Nom"},
	FieldFullName:     {"Nom d'utilisateur"},
	FieldEmail:        {"E-mail", "Email", "E-mail 2"},
	FieldTeam:         {"Équipe", "Equipe", "Équipe/département", "Equipe/département"},
	FieldMemberNumber: {"Numéro de athlète", "N° de maillot", "N° de réf.", "Numéro de réf.", "No de réf."},
	FieldGender:       {"Genre"},

	FieldSeason:             {"Saison"},
	FieldPaymentMethod:      {"Paiement", "Moyen de paiement", "Mode de paiement"},
	FieldAmount:             {"Montant", "Montant payé", "Tarif"},
	FieldStatus:             {"Statut", "Statut du paiement"},
	FieldPaidAt:             {"Date de paiement", "Payé le"},
	FieldTransferDate:       {"Date de virement", "Virement"},
	FieldLicenseValidated:   {"Licence validée", "Licence validee"},
	FieldLicenseText:        {"Licence", "N° de licence"},
	FieldCertificateValid:   {"Certificat médical", "Certificat medical", "Certificat"},
	FieldTShirtSize:         {"Taille de t-shirt", "Taille T-shirt", "Taille"},
	FieldQuestionnaireMinor: {"Questionnaire mineur", "Questionnaire"},

	FieldTitle:    {"Titre", "Séance", "Seance", "Intitulé"},
	FieldStartsAt: {"Date", "Début", "Debut", "Date de début", "Horodatage"},
}

// Lookup returns the trimmed value of the first alias present and non-empty
// in the row. Header keys are matched after trimming, so rows coming straight
// from JSON bodies behave like parsed table rows.
func Lookup(row parser.Row, f Field) string {
	aliases := fieldAliases[f]
	for _, a := range aliases {
		for k, v := range row {
			if strings.TrimSpace(k) == a {
				if s := strings.TrimSpace(v); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

var (
	trueTokens  = map[string]bool{"1": true, "true": true, "vrai": true, "oui": true, "yes": true, "y": true, "x": true}
	falseTokens = map[string]bool{"0": true, "false": true, "faux": true, "non": true, "no": true, "n": true}
)

// NormBool maps boolean-ish tokens to a tri-state: nil means "don't know"
// and is stored as NULL, never coerced to false.
func NormBool(v string) *bool {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return nil
	}
	if trueTokens[s] {
		b := true
		return &b
	}
	if falseTokens[s] {
		b := false
		return &b
	}
	return nil
}

// SplitName splits a combined "full name" cell: first token is the first
// name, the rest joined by single spaces is the last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
