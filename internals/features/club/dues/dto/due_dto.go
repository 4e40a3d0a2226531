package dto

// DuesStatus is one line of the season roster: who has a settled due for the
// requested season.
type DuesStatus struct {
	MemberID       int64   `json:"member_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email"`
	MemberNumber   *string `json:"member_number"`
	TeamName       *string `json:"team_name"`
	PaidThisSeason bool    `json:"paid_this_season"`
}
