package dto

type TeamCreateDTO struct {
	Name string `json:"name" validate:"required,min=1"`
}
