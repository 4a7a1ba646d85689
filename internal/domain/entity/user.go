package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles. Raw input is normalized once at the
// boundary via ParseRole; downstream code only compares Role values.
type Role string

const (
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// ParseRole normalizes a raw string into a Role. The second return value is
// false for anything outside the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, true
	case RoleDoctor:
		return RoleDoctor, true
	case RoleReceptionist:
		return RoleReceptionist, true
	}
	return "", false
}

// User represents the centralized identity table shared by every role.
// Accounts are soft deleted: deactivation flips Status to false and rows are
// never removed by normal operation.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role             Role       `gorm:"type:varchar(20);not null;index" json:"role"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	CPF              string     `gorm:"column:cpf;type:char(11);uniqueIndex;not null" json:"cpf"`
	Phone            string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Status           *bool      `gorm:"not null;default:true;index" json:"status"`
	TwoFactorEnabled bool       `gorm:"not null;default:false" json:"two_factor_enabled"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor       *Doctor       `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Patient      *Patient      `gorm:"foreignKey:UserID" json:"patient,omitempty"`
	Receptionist *Receptionist `gorm:"foreignKey:UserID" json:"receptionist,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account is allowed to authenticate.
func (u *User) IsActive() bool {
	return u.Status == nil || *u.Status
}
