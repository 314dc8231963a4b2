package project

import (
	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/flat"
)

// The capacity ledger: remaining units per flat type and remaining officer
// slots. Every counter stays >= 0. None of the reservations are idempotent;
// callers reserve exactly once per booking or officer approval.

// Remaining returns the units left for ft.
func (p *Project) Remaining(ft flat.Type) int {
	switch ft {
	case flat.TwoRoom:
		return p.TwoRoomUnits
	case flat.ThreeRoom:
		return p.ThreeRoomUnits
	}
	return 0
}

// ReserveUnit takes one unit of ft. Used only when booking.
func (p *Project) ReserveUnit(ft flat.Type) error {
	switch ft {
	case flat.TwoRoom:
		if p.TwoRoomUnits <= 0 {
			return errs.Reason(errs.ErrNoCapacity, "no %s units left in %s", ft, p.Name)
		}
		p.TwoRoomUnits--
	case flat.ThreeRoom:
		if p.ThreeRoomUnits <= 0 {
			return errs.Reason(errs.ErrNoCapacity, "no %s units left in %s", ft, p.Name)
		}
		p.ThreeRoomUnits--
	default:
		return errs.Reason(errs.ErrInvalidInput, "unknown flat type %q", ft)
	}
	return nil
}

// ReserveOfficerSlot consumes a slot and attaches the officer.
func (p *Project) ReserveOfficerSlot(nric string) error {
	if p.OfficerSlots <= 0 {
		return errs.Reason(errs.ErrNoCapacity, "no officer slots left in %s", p.Name)
	}
	p.OfficerSlots--
	p.addOfficer(nric)
	return nil
}

// ReleaseOfficerSlot detaches the officer and returns the slot. Releasing an
// officer that is not attached is a no-op.
func (p *Project) ReleaseOfficerSlot(nric string) {
	if !p.HasOfficer(nric) {
		return
	}
	p.removeOfficer(nric)
	p.OfficerSlots++
}
