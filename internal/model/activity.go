package model

import "time"

// Activity is a logged task of an assistantship. Timestamp is assigned by the
// store at insert time (UTC) and Period snapshots the name of the period that
// was current at that moment; the snapshot never changes afterwards, even if
// the current period does.
type Activity struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AssistantshipID uint      `gorm:"index;not null" json:"assistantship_id"`
	Timestamp       time.Time `gorm:"not null" json:"timestamp"`
	Description     string    `gorm:"type:text" json:"description"`
	Evidence        string    `gorm:"type:text" json:"evidence"`
	Period          string    `gorm:"size:50;not null" json:"period"`
}
