package model

import "time"

// Team name is the natural key: lookups during import are exact
// (case-sensitive), unlike member name matching.
type TeamModel struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TeamModel) TableName() string {
	return "teams"
}
