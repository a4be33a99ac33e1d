package model

import "time"

// Assistant is an "ayudante": a student holding an assistantship position.
// The national ID (cedula) is the primary key and its value space is shared
// exclusively with Supervisor — the same cedula may never exist in both tables.
type Assistant struct {
	NationalID string    `gorm:"size:20;primaryKey" json:"national_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;index;not null" json:"email"`
	Level      string    `gorm:"size:50" json:"level"`
	Faculty    string    `gorm:"size:100" json:"faculty"`
	Career     string    `gorm:"size:100" json:"career"`
	Credential string    `gorm:"size:64;not null" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
