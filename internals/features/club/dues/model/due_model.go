package model

import "time"

// One row per member per season. Re-imports update in place, they never
// duplicate, hence the composite unique index.
type DueModel struct {
	ID                 int64      `gorm:"primaryKey" json:"id"`
	MemberID           int64      `gorm:"not null;uniqueIndex:uq_dues_member_season" json:"member_id"`
	Season             string     `gorm:"not null;uniqueIndex:uq_dues_member_season" json:"season"`
	PaymentMethod      *string    `json:"payment_method"`
	Amount             *float64   `gorm:"type:numeric(10,2)" json:"amount"`
	Status             *string    `json:"status"`
	PaidAt             *time.Time `json:"paid_at"`
	TransferDate       *time.Time `json:"transfer_date"`
	LicenseValidated   *bool      `json:"license_validated"`
	LicenseText        *string    `json:"license_text"`
	CertificateValid   *bool      `json:"certificate_valid"`
	TShirtSize         *string    `json:"t_shirt_size"`
	QuestionnaireMinor *bool      `json:"questionnaire_minor"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (DueModel) TableName() string {
	return "dues"
}
