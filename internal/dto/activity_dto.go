package dto

import (
	"io"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
)

type CreateActivityInput struct {
	AssistantshipID uint   `json:"assistantship_id" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Evidence        string `json:"evidence"`
}

type UpdateActivityInput struct {
	Description string `json:"description" binding:"required"`
	Evidence    string `json:"evidence"`
}

type CreateActivityResponse struct {
	Status   string          `json:"status"`
	Activity *model.Activity `json:"activity"`
}

// CurrentPeriodActivities is the response for the current-period listing: it
// names the period the rows were filtered by.
type CurrentPeriodActivities struct {
	Status        string           `json:"status"`
	CurrentPeriod string           `json:"current_period"`
	Activities    []model.Activity `json:"activities"`
}

// EvidenceFile is an uploaded evidence attachment.
type EvidenceFile struct {
	Reader   io.Reader
	FileName string
}
