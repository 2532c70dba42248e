package model

import "time"

// RevokedSession records a session token ended by logout. Rows are only
// meaningful until ExpiresAt, after which the token is rejected anyway.
type RevokedSession struct {
	TokenID   string    `gorm:"column:token_id;primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
