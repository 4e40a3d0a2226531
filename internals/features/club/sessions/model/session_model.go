package model

import "time"

// Sessions are deduplicated on (team_id, title, starts_at) at import time;
// the unique index backs that up for concurrent writers.
type SessionModel struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	TeamID    *int64    `gorm:"uniqueIndex:uq_sessions_team_title_start" json:"team_id"`
	Title     string    `gorm:"not null;uniqueIndex:uq_sessions_team_title_start" json:"title"`
	StartsAt  time.Time `gorm:"not null;uniqueIndex:uq_sessions_team_title_start" json:"starts_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
