package dto

import "github.com/Soriano-1807/ayudantech-backend/internal/model"

type CreateApprovalInput struct {
	AssistantshipID uint `json:"assistantship_id" binding:"required"`
}

type CreateApprovalResponse struct {
	Status   string          `json:"status"`
	Approval *model.Approval `json:"approval"`
}

// IsOpen is a *bool so a missing or non-boolean value fails binding with 400,
// matching the window-toggle contract.
type SetApprovalWindowInput struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}

type ApprovalWindowResponse struct {
	IsOpen bool   `json:"is_open"`
	State  string `json:"state"`
}

// ApprovedDetail joins an approval with the people and position involved.
type ApprovedDetail struct {
	AssistantName  string `json:"assistant_name"`
	SupervisorName string `json:"supervisor_name"`
	Position       string `json:"position"`
}
