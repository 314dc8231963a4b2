package application

import (
	"time"

	"flat-allocation/internal/domain/errs"
)

// Valid status graph:
//
//	PENDING ──► SUCCESSFUL ──► BOOKED
//	   │  └──► UNSUCCESSFUL       │
//	   └──────────┴──► WITHDRAWAL_REQUESTED ──► WITHDRAWAL_APPROVED
//	                         └──► back to the prior status
//
// BOOKED, UNSUCCESSFUL and WITHDRAWAL_APPROVED are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:             {StatusSuccessful, StatusUnsuccessful, StatusWithdrawalRequested},
	StatusSuccessful:          {StatusBooked, StatusWithdrawalRequested},
	StatusWithdrawalRequested: {StatusWithdrawalApproved, StatusPending, StatusSuccessful},
}

func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal statuses have no outgoing transitions.
func (s Status) Terminal() bool { return len(validTransitions[s]) == 0 }

// Active is true for statuses that are still being worked on.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusSuccessful || s == StatusWithdrawalRequested
}

// Blocking statuses stop the applicant from opening another application.
// BOOKED blocks forever.
func (s Status) Blocking() bool { return s.Active() || s == StatusBooked }

// BlockingStatuses lists every Blocking status, for repository queries.
var BlockingStatuses = []Status{StatusPending, StatusSuccessful, StatusWithdrawalRequested, StatusBooked}

func (a *Application) transition(to Status, now time.Time) error {
	if !CanTransition(a.Status, to) {
		return errs.Reason(errs.ErrInvalidTransition, "application %s: %s -> %s", a.ApplicationID, a.Status, to)
	}
	a.Status = to
	a.StatusUpdatedAt = now.UTC()
	return nil
}

// Decide applies a manager's decision on a PENDING application.
func (a *Application) Decide(approve bool, now time.Time) error {
	if a.Status != StatusPending {
		return errs.Reason(errs.ErrInvalidTransition, "application %s is %s, not PENDING", a.ApplicationID, a.Status)
	}
	if approve {
		return a.transition(StatusSuccessful, now)
	}
	return a.transition(StatusUnsuccessful, now)
}

// RequestWithdrawal moves PENDING or SUCCESSFUL to WITHDRAWAL_REQUESTED and
// remembers where it came from.
func (a *Application) RequestWithdrawal(now time.Time) error {
	switch a.Status {
	case StatusBooked:
		return errs.Reason(errs.ErrAlreadyBooked, "application %s is booked", a.ApplicationID)
	case StatusWithdrawalRequested:
		return errs.Reason(errs.ErrAlreadyRequested, "application %s", a.ApplicationID)
	}
	prior := a.Status
	if err := a.transition(StatusWithdrawalRequested, now); err != nil {
		return err
	}
	a.PriorStatus = prior
	return nil
}

// DecideWithdrawal approves the withdrawal or restores the prior status.
func (a *Application) DecideWithdrawal(approve bool, now time.Time) error {
	if a.Status != StatusWithdrawalRequested {
		return errs.Reason(errs.ErrInvalidTransition, "application %s is %s, not WITHDRAWAL_REQUESTED", a.ApplicationID, a.Status)
	}
	if approve {
		return a.transition(StatusWithdrawalApproved, now)
	}
	prior := a.PriorStatus
	if prior != StatusPending && prior != StatusSuccessful {
		return errs.Reason(errs.ErrInvalidTransition, "application %s has no restorable prior status (%q)", a.ApplicationID, prior)
	}
	if err := a.transition(prior, now); err != nil {
		return err
	}
	a.PriorStatus = ""
	return nil
}

// Book moves a SUCCESSFUL application to BOOKED.
func (a *Application) Book(now time.Time) error {
	if a.Status == StatusBooked {
		return errs.Reason(errs.ErrAlreadyBooked, "application %s", a.ApplicationID)
	}
	if a.Status != StatusSuccessful {
		return errs.Reason(errs.ErrInvalidTransition, "application %s is %s, not SUCCESSFUL", a.ApplicationID, a.Status)
	}
	return a.transition(StatusBooked, now)
}
