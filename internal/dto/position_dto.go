package dto

type CreatePositionInput struct {
	Name string `json:"name" binding:"required,max=100"`
}

type RenamePositionInput struct {
	NewName string `json:"new_name" binding:"required,max=100"`
}
