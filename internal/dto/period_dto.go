package dto

// IsCurrent is a *bool so a missing or non-boolean value is rejected at bind
// time instead of silently defaulting to false.
type CreatePeriodInput struct {
	Name      string `json:"name" binding:"required,max=50"`
	IsCurrent *bool  `json:"is_current" binding:"required"`
}

type SetPeriodCurrentInput struct {
	IsCurrent *bool `json:"is_current" binding:"required"`
}
