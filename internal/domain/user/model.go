package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleDriver          Role = "driver"
	RoleWarehouse       Role = "warehouse"
	RoleExecutive       Role = "executive"
	RoleOperationalLead Role = "operational_lead"
)

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RoleWarehouse, RoleExecutive, RoleOperationalLead:
		return true
	default:
		return false
	}
}

// CanReview reports whether the role may approve, reject or flag submissions.
func (r Role) CanReview() bool {
	switch r {
	case RoleAdmin, RoleWarehouse, RoleExecutive, RoleOperationalLead:
		return true
	default:
		return false
	}
}

// ReviewerRoles lists the roles for which CanReview is true.
var ReviewerRoles = []Role{RoleAdmin, RoleWarehouse, RoleExecutive, RoleOperationalLead}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	FirstName  string    `gorm:"size:100" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	Role       Role      `gorm:"type:varchar(32);not null;default:'driver';index" json:"role"`
	Phone      *string   `gorm:"size:50" json:"phone,omitempty"`
	Department *string   `gorm:"size:100" json:"department,omitempty"`
	Avatar     *string   `gorm:"size:500" json:"avatar,omitempty"`
	Status     Status    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName joins first and last name, trimmed.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Identity returns the request-scoped view of the user.
func (u User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Identity is the authenticated actor passed from the HTTP layer into services.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// DisplayName is the name recorded on submissions; it falls back to the email.
func (i Identity) DisplayName() string {
	name := strings.TrimSpace(i.FirstName + " " + i.LastName)
	if name == "" {
		return i.Email
	}
	return name
}
