package registration

import (
	"time"

	"flat-allocation/internal/domain/errs"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Table: registrations
//
// A registration is an officer's request to administer a project. An officer
// holds at most one registration that is not REJECTED.
type Registration struct {
	ID             uint64     `gorm:"primaryKey;column:id" json:"-"`
	RegistrationID string     `gorm:"size:32;uniqueIndex:ux_registrations_registration_id;not null" json:"registration_id"`
	OfficerNRIC    string     `gorm:"size:9;index:idx_registrations_officer;not null" json:"officer_nric"`
	ProjectName    string     `gorm:"size:128;index:idx_registrations_project;not null" json:"project_name"`
	Status         Status     `gorm:"size:16;not null;default:'PENDING'" json:"status"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Registration) TableName() string { return "registrations" }

// Holds is true while the registration ties the officer to its project.
func (r *Registration) Holds() bool { return r.Status != StatusRejected }

// Decide applies a manager's decision on a PENDING registration.
func (r *Registration) Decide(approve bool, now time.Time) error {
	if r.Status != StatusPending {
		return errs.Reason(errs.ErrInvalidTransition, "registration %s is %s, not PENDING", r.RegistrationID, r.Status)
	}
	r.Status = StatusRejected
	if approve {
		r.Status = StatusApproved
	}
	t := now.UTC()
	r.DecidedAt = &t
	return nil
}

// Revoke ends an APPROVED assignment.
func (r *Registration) Revoke(now time.Time) error {
	if r.Status != StatusApproved {
		return errs.Reason(errs.ErrInvalidTransition, "registration %s is %s, not APPROVED", r.RegistrationID, r.Status)
	}
	r.Status = StatusRejected
	t := now.UTC()
	r.DecidedAt = &t
	return nil
}
