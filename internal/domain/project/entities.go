package project

import (
	"slices"
	"time"

	"flat-allocation/internal/domain/flat"
)

// MaxOfficerSlots caps how many officers one project may have.
const MaxOfficerSlots = 10

// Table: projects
type Project struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	Name           string    `gorm:"size:128;uniqueIndex:ux_projects_name;not null" json:"name"`
	Neighborhood   string    `gorm:"size:128" json:"neighborhood"`
	OpenDate       time.Time `gorm:"not null" json:"open_date"`
	CloseDate      time.Time `gorm:"not null" json:"close_date"`
	Visible        bool      `gorm:"not null;default:false" json:"visible"`
	TwoRoomUnits   int       `gorm:"column:two_room_units;not null" json:"two_room_units"`
	ThreeRoomUnits int       `gorm:"column:three_room_units;not null" json:"three_room_units"`
	TwoRoomPrice   float64   `gorm:"column:two_room_price;type:decimal(14,2)" json:"two_room_price"`
	ThreeRoomPrice float64   `gorm:"column:three_room_price;type:decimal(14,2)" json:"three_room_price"`
	OfficerSlots   int       `gorm:"not null" json:"officer_slots"`
	ManagerNRIC    string    `gorm:"size:9;index:idx_projects_manager;not null" json:"manager_nric"`
	OfficerNRICs   []string  `gorm:"column:officer_nrics;type:text;serializer:json" json:"officer_nrics"`
	ApplicantNRICs []string  `gorm:"column:applicant_nrics;type:text;serializer:json" json:"applicant_nrics"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsOpen reports whether now falls inside [OpenDate, CloseDate], by calendar day.
func (p *Project) IsOpen(now time.Time) bool {
	d := day(now)
	return !d.Before(day(p.OpenDate)) && !d.After(day(p.CloseDate))
}

// Overlaps reports whether the application windows of p and o share a day.
func (p *Project) Overlaps(o *Project) bool {
	return !day(p.CloseDate).Before(day(o.OpenDate)) && !day(o.CloseDate).Before(day(p.OpenDate))
}

// Price returns the unit price for ft, 0 for unknown types.
func (p *Project) Price(ft flat.Type) float64 {
	switch ft {
	case flat.TwoRoom:
		return p.TwoRoomPrice
	case flat.ThreeRoom:
		return p.ThreeRoomPrice
	}
	return 0
}

func (p *Project) HasOfficer(nric string) bool   { return slices.Contains(p.OfficerNRICs, nric) }
func (p *Project) HasApplicant(nric string) bool { return slices.Contains(p.ApplicantNRICs, nric) }

// InUse is true while any officer or applicant is attached.
func (p *Project) InUse() bool { return len(p.OfficerNRICs) > 0 || len(p.ApplicantNRICs) > 0 }

func (p *Project) AddApplicant(nric string) {
	if !p.HasApplicant(nric) {
		p.ApplicantNRICs = append(p.ApplicantNRICs, nric)
	}
}

func (p *Project) RemoveApplicant(nric string) {
	p.ApplicantNRICs = slices.DeleteFunc(p.ApplicantNRICs, func(s string) bool { return s == nric })
}

func (p *Project) addOfficer(nric string) {
	if !p.HasOfficer(nric) {
		p.OfficerNRICs = append(p.OfficerNRICs, nric)
	}
}

func (p *Project) removeOfficer(nric string) {
	p.OfficerNRICs = slices.DeleteFunc(p.OfficerNRICs, func(s string) bool { return s == nric })
}
