package person

import (
	"regexp"
	"time"
)

type MaritalStatus string

const (
	Single  MaritalStatus = "Single"
	Married MaritalStatus = "Married"
)

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleOfficer   Role = "officer"
	RoleManager   Role = "manager"
)

var reNRIC = regexp.MustCompile(`^[STFG]\d{7}[A-Z]$`)

// ValidNRIC reports whether s looks like an NRIC (S1234567A).
func ValidNRIC(s string) bool { return reNRIC.MatchString(s) }

// Table: people
//
// An officer is an applicant with an extra capability: the applicant profile
// is Age/MaritalStatus, the officer assignment lives in registrations.
type Person struct {
	ID            uint64        `gorm:"primaryKey;column:id" json:"-"`
	NRIC          string        `gorm:"size:9;uniqueIndex:ux_people_nric;not null" json:"nric"`
	Name          string        `gorm:"size:128;not null" json:"name"`
	Age           int           `gorm:"not null" json:"age"`
	MaritalStatus MaritalStatus `gorm:"size:16;not null" json:"marital_status"`
	Role          Role          `gorm:"size:16;not null" json:"role"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Person) TableName() string { return "people" }

// Profile is the part of a person the eligibility rules look at.
type Profile struct {
	Age           int
	MaritalStatus MaritalStatus
}

func (p *Person) Profile() Profile { return Profile{Age: p.Age, MaritalStatus: p.MaritalStatus} }

// CanApply is true for applicants and officers; managers never apply.
func (p *Person) CanApply() bool { return p.Role == RoleApplicant || p.Role == RoleOfficer }

func (p *Person) IsOfficer() bool { return p.Role == RoleOfficer }

func (p *Person) IsManager() bool { return p.Role == RoleManager }
