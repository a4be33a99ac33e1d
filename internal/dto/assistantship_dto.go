package dto

type CreateAssistantshipInput struct {
	AssistantID  string `json:"assistant_id" binding:"required,max=20"`
	SupervisorID string `json:"supervisor_id" binding:"required,max=20"`
	Position     string `json:"position" binding:"required,max=100"`
	Type         string `json:"type" binding:"max=50"`
}

type SetObjectiveInput struct {
	Objective string `json:"objective"`
}
