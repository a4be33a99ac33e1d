package model

// Approval records that an assistantship was approved in a period. Period is
// snapshotted from the current period at creation time.
type Approval struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	AssistantshipID uint   `gorm:"index;not null" json:"assistantship_id"`
	Period          string `gorm:"size:50;not null" json:"period"`
}

// ApprovalWindow is a singleton: exactly one row exists at all times. The API
// only ever toggles IsOpen; the row itself is seeded at startup.
type ApprovalWindow struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	IsOpen bool `gorm:"not null;default:false" json:"is_open"`
}
