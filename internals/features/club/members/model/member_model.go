package model

import "time"

type MemberModel struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        *string    `gorm:"index" json:"email"`
	MemberNumber *string    `gorm:"index" json:"member_number"`
	Gender       *string    `json:"gender"`
	TeamID       *int64     `gorm:"index" json:"team_id"`
	Deleted      bool       `gorm:"not null;default:false" json:"deleted"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (MemberModel) TableName() string {
	return "members"
}
