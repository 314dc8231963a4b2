// Package eligibility decides who may apply for what. Every function here is
// pure; callers pass the clock in.
package eligibility

import (
	"time"

	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/flat"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/domain/project"
)

const (
	MinSingleAge  = 35
	MinMarriedAge = 21
)

// AllowedFlatTypes returns the flat types a profile qualifies for.
func AllowedFlatTypes(p person.Profile) []flat.Type {
	switch {
	case p.MaritalStatus == person.Married && p.Age >= MinMarriedAge:
		return []flat.Type{flat.TwoRoom, flat.ThreeRoom}
	case p.MaritalStatus == person.Single && p.Age >= MinSingleAge:
		return []flat.Type{flat.TwoRoom}
	}
	return nil
}

// Allows reports whether the profile may take ft.
func Allows(p person.Profile, ft flat.Type) bool {
	for _, t := range AllowedFlatTypes(p) {
		if t == ft {
			return true
		}
	}
	return false
}

// ProjectOpen reports whether applicants can currently see and apply to proj.
func ProjectOpen(proj *project.Project, now time.Time) bool {
	return proj.Visible && proj.IsOpen(now)
}

// Check returns nil or an error matching errs.ErrNotEligible with the reason.
func Check(p person.Profile, proj *project.Project, ft flat.Type, now time.Time) error {
	if !proj.Visible {
		return errs.Reason(errs.ErrNotEligible, "project %s is not visible", proj.Name)
	}
	if !proj.IsOpen(now) {
		return errs.Reason(errs.ErrNotEligible, "project %s is not open for applications", proj.Name)
	}
	if !Allows(p, ft) {
		return errs.Reason(errs.ErrNotEligible, "%s applicant aged %d cannot apply for %s", p.MaritalStatus, p.Age, ft)
	}
	return nil
}
