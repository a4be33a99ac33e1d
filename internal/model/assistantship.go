package model

// Assistantship is an "ayudantía": the assignment of an assistant to a
// position under a supervisor. At most one per assistant (unique index on
// AssistantID). AssistantID and SupervisorID are plain columns, not DB
// foreign keys: assistant/supervisor deletion is unconditional and must not
// cascade or be blocked here. Existence of both is checked in the same
// transaction as the insert.
type Assistantship struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	AssistantID  string `gorm:"size:20;uniqueIndex;not null" json:"assistant_id"`
	SupervisorID string `gorm:"size:20;index;not null" json:"supervisor_id"`
	Position     string `gorm:"size:100;not null" json:"position"`
	Objective    string `gorm:"type:text" json:"objective"`
	Type         string `gorm:"size:50" json:"type"`
}
