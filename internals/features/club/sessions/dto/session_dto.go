package dto

type SessionCreateDTO struct {
	Title    string `json:"title" validate:"required,min=1"`
	StartsAt string `json:"starts_at" validate:"required"`
	TeamID   *int64 `json:"team_id"`
}
