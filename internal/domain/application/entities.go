package application

import (
	"time"

	"flat-allocation/internal/domain/flat"
)

type Status string

const (
	StatusPending             Status = "PENDING"
	StatusSuccessful          Status = "SUCCESSFUL"
	StatusUnsuccessful        Status = "UNSUCCESSFUL"
	StatusBooked              Status = "BOOKED"
	StatusWithdrawalRequested Status = "WITHDRAWAL_REQUESTED"
	StatusWithdrawalApproved  Status = "WITHDRAWAL_APPROVED"
)

// Table: applications
//
// PriorStatus is the status held when a withdrawal was requested; a rejected
// withdrawal restores it.
type Application struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID   string    `gorm:"size:32;uniqueIndex:ux_applications_application_id;not null" json:"application_id"`
	ApplicantNRIC   string    `gorm:"size:9;index:idx_applications_applicant;not null" json:"applicant_nric"`
	ProjectName     string    `gorm:"size:128;index:idx_applications_project;not null" json:"project_name"`
	FlatType        flat.Type `gorm:"size:16;not null" json:"flat_type"`
	Status          Status    `gorm:"size:32;not null;default:'PENDING'" json:"status"`
	PriorStatus     Status    `gorm:"size:32" json:"prior_status,omitempty"`
	StatusUpdatedAt time.Time `gorm:"column:status_updated_at" json:"status_updated_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }
