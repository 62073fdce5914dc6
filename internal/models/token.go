package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordReset is a single-use recovery token. It is deleted when consumed.
type PasswordReset struct {
	ID        string    `gorm:"type:varchar(24);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `gorm:"type:varchar(24);not null;index" json:"user_id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (p *PasswordReset) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// Expired reports whether the token is past its expiry window.
func (p *PasswordReset) Expired() bool {
	return time.Now().After(p.ExpiresAt)
}

// EmailVerification is a token mailed at registration.
type EmailVerification struct {
	ID        string    `gorm:"type:varchar(24);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `gorm:"type:varchar(24);not null;index" json:"user_id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (v *EmailVerification) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = NewID()
	}
	return nil
}

func (v *EmailVerification) Expired() bool {
	return time.Now().After(v.ExpiresAt)
}
