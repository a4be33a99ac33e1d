package dto

type CreateSupervisorInput struct {
	NationalID string `json:"national_id" binding:"required,max=20"`
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
}

type UpdateSupervisorInput struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
}
