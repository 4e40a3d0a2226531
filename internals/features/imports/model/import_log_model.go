package model

import (
	"time"

	"gorm.io/datatypes"
)

// One audit row per import call: what kind of import, how the body arrived
// (json or raw table) and the counter snapshot returned to the caller.
type ImportLogModel struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	Kind      string         `gorm:"not null;index" json:"kind"` // members|dues|sessions
	Mode      string         `gorm:"not null" json:"mode"`       // json|table
	RowsTotal int            `gorm:"not null" json:"rows_total"`
	Result    datatypes.JSON `json:"result"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ImportLogModel) TableName() string {
	return "import_logs"
}
