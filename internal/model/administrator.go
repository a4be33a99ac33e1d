package model

import "time"

// Administrator can only log in; it has no profile beyond the email.
type Administrator struct {
	Email      string    `gorm:"size:100;primaryKey" json:"email"`
	Credential string    `gorm:"size:64;not null" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
