package model

import "time"

// Supervisor oversees one or more assistantships. Shares the cedula value
// space with Assistant (see Assistant).
type Supervisor struct {
	NationalID string    `gorm:"size:20;primaryKey" json:"national_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;index;not null" json:"email"`
	Credential string    `gorm:"size:64;not null" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
