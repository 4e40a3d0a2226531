package model

type AttendanceModel struct {
	SessionID int64 `gorm:"primaryKey;autoIncrement:false" json:"session_id"`
	MemberID  int64 `gorm:"primaryKey;autoIncrement:false" json:"member_id"`
	Present   bool  `gorm:"not null" json:"present"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
