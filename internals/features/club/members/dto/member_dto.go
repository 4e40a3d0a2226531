package dto

import "time"

// MemberWithTeam is the list projection: member columns plus the joined
// team name.
type MemberWithTeam struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        *string   `json:"email"`
	MemberNumber *string   `json:"member_number"`
	Gender       *string   `json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
	TeamName     *string   `json:"team_name"`
}
