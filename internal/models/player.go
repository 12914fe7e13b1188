package models

import "time"

// Player is a registered participant. The access code is a shared
// secret presented on login and on delete; it is stored as plain text
// and is not a security boundary.
type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;index" json:"name"`
	Code      string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
