package rowmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clubapp_backend/internals/features/imports/parser"
)

// ErrValidation marks bad cell contents (unparsable dates, amounts, ...).
// Handlers answer 400 for these instead of blaming the database.
var ErrValidation = errors.New("validation")

// MemberRow is a member import record after normalization.
type MemberRow struct {
	FirstName    string
	LastName     string
	Email        string
	TeamName     string
	MemberNumber string
	Gender       string
}

// DuesRow carries the member identity plus the payment/license/logistics
// fields of one dues record.
type DuesRow struct {
	FirstName    string
	LastName     string
	Email        string
	TeamName     string
	MemberNumber string

	Season             string
	PaymentMethod      string
	Amount             *float64
	Status             string
	PaidAt             *time.Time
	TransferDate       *time.Time
	LicenseValidated   *bool
	LicenseText        string
	CertificateValid   *bool
	TShirtSize         string
	QuestionnaireMinor *bool
}

// SessionRow is one training session to register.
type SessionRow struct {
	TeamName string
	Title    string
	StartsAt time.Time
}

// MapMember normalizes one raw row. A nil row with nil error means the record
// carries no usable identity (both names empty) and must be skipped.
func MapMember(row parser.Row) (*MemberRow, error) {
	first := Lookup(row, FieldFirstName)
	last := Lookup(row, FieldLastName)

	if first == "" && last == "" {
		if full := Lookup(row, FieldFullName); full != "" {
			first, last = SplitName(full)
		}
	}
	if first == "" && last == "" {
		return nil, nil
	}

	return &MemberRow{
		FirstName:    first,
		LastName:     last,
		Email:        strings.ToLower(Lookup(row, FieldEmail)),
		TeamName:     Lookup(row, FieldTeam),
		MemberNumber: Lookup(row, FieldMemberNumber),
		Gender:       strings.ToLower(Lookup(row, FieldGender)),
	}, nil
}

// MapDues normalizes one dues row. Same skip rule as MapMember.
func MapDues(row parser.Row) (*DuesRow, error) {
	first := Lookup(row, FieldFirstName)
	last := Lookup(row, FieldLastName)
	if first == "" && last == "" {
		if full := Lookup(row, FieldFullName); full != "" {
			first, last = SplitName(full)
		}
	}
	if first == "" && last == "" {
		return nil, nil
	}

	amount, err := parseAmount(Lookup(row, FieldAmount))
	if err != nil {
		return nil, err
	}
	paidAt, err := parseDate(Lookup(row, FieldPaidAt))
	if err != nil {
		return nil, err
	}
	transfer, err := parseDate(Lookup(row, FieldTransferDate))
	if err != nil {
		return nil, err
	}

	return &DuesRow{
		FirstName:    first,
		LastName:     last,
		Email:        strings.ToLower(Lookup(row, FieldEmail)),
		TeamName:     Lookup(row, FieldTeam),
		MemberNumber: Lookup(row, FieldMemberNumber),

		Season:             Lookup(row, FieldSeason),
		PaymentMethod:      Lookup(row, FieldPaymentMethod),
		Amount:             amount,
		Status:             Lookup(row, FieldStatus),
		PaidAt:             paidAt,
		TransferDate:       transfer,
		LicenseValidated:   NormBool(Lookup(row, FieldLicenseValidated)),
		LicenseText:        Lookup(row, FieldLicenseText),
		CertificateValid:   NormBool(Lookup(row, FieldCertificateValid)),
		TShirtSize:         Lookup(row, FieldTShirtSize),
		QuestionnaireMinor: NormBool(Lookup(row, FieldQuestionnaireMinor)),
	}, nil
}

// MapSession normalizes one session row. Rows without a title or a parsable
// start date are rejected, not skipped: a session export always carries both.
func MapSession(row parser.Row) (*SessionRow, error) {
	title := Lookup(row, FieldTitle)
	if title == "" {
		return nil, fmt.Errorf("%w: titre manquant", ErrValidation)
	}
	raw := Lookup(row, FieldStartsAt)
	starts, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	if starts == nil {
		return nil, fmt.Errorf("%w: date de séance manquante", ErrValidation)
	}
	return &SessionRow{
		TeamName: Lookup(row, FieldTeam),
		Title:    title,
		StartsAt: *starts,
	}, nil
}

// parseAmount accepts locale amounts ("120,50", "120.50", "120 €").
func parseAmount(s string) (*float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "€"))
	if s == "" {
		return nil, nil
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: montant invalide %q", ErrValidation, s)
	}
	return &f, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// parseDate accepts the timestamp spellings seen in exports: RFC3339,
// ISO dates and the French day-first form. Empty maps to nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: date invalide %q", ErrValidation, s)
}
