package models

import "time"

type User struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:'user'" json:"role"` // user, admin
	IsVerified   bool   `gorm:"not null;default:false" json:"is_verified"`

	// Outstanding email-verification or password-reset challenge.
	// Both fields are nil or both are set, never one without the other.
	VerificationCode *string    `json:"-"`
	CodeExpiresAt    *time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// SetChallenge installs a new verification code, replacing any outstanding one.
func (u *User) SetChallenge(code string, expiresAt time.Time) {
	u.VerificationCode = &code
	u.CodeExpiresAt = &expiresAt
}

// ClearChallenge consumes the outstanding code.
func (u *User) ClearChallenge() {
	u.VerificationCode = nil
	u.CodeExpiresAt = nil
}
