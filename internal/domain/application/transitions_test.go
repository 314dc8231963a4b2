package application

import (
	"errors"
	"testing"
	"time"

	"flat-allocation/internal/domain/errs"
)

var now = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

func app(s Status) *Application { return &Application{ApplicationID: "app-1", Status: s} }

func TestDecide(t *testing.T) {
	a := app(StatusPending)
	if err := a.Decide(true, now); err != nil || a.Status != StatusSuccessful {
		t.Fatalf("approve: status=%s err=%v", a.Status, err)
	}
	if !a.StatusUpdatedAt.Equal(now) {
		t.Fatalf("status timestamp not set: %v", a.StatusUpdatedAt)
	}
	// second decision is rejected and leaves the state alone
	if err := a.Decide(false, now); !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("second decide: want ErrInvalidTransition, got %v", err)
	}
	if a.Status != StatusSuccessful {
		t.Fatalf("status changed by rejected decide: %s", a.Status)
	}

	b := app(StatusPending)
	if err := b.Decide(false, now); err != nil || b.Status != StatusUnsuccessful {
		t.Fatalf("reject: status=%s err=%v", b.Status, err)
	}
}

func TestRequestWithdrawal(t *testing.T) {
	tests := []struct {
		from    Status
		wantErr error
	}{
		{StatusPending, nil},
		{StatusSuccessful, nil},
		{StatusBooked, errs.ErrAlreadyBooked},
		{StatusWithdrawalRequested, errs.ErrAlreadyRequested},
		{StatusUnsuccessful, errs.ErrInvalidTransition},
		{StatusWithdrawalApproved, errs.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			a := app(tt.from)
			err := a.RequestWithdrawal(now)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if a.Status != StatusWithdrawalRequested || a.PriorStatus != tt.from {
					t.Fatalf("status=%s prior=%s", a.Status, a.PriorStatus)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if a.Status != tt.from {
				t.Fatalf("status changed on failure: %s", a.Status)
			}
		})
	}
}

func TestDecideWithdrawal_RejectRestoresPrior(t *testing.T) {
	for _, prior := range []Status{StatusPending, StatusSuccessful} {
		a := app(prior)
		if err := a.RequestWithdrawal(now); err != nil {
			t.Fatalf("request: %v", err)
		}
		if err := a.DecideWithdrawal(false, now); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if a.Status != prior || a.PriorStatus != "" {
			t.Fatalf("want %s restored, got status=%s prior=%s", prior, a.Status, a.PriorStatus)
		}
	}
}

func TestDecideWithdrawal_Approve(t *testing.T) {
	a := app(StatusSuccessful)
	_ = a.RequestWithdrawal(now)
	if err := a.DecideWithdrawal(true, now); err != nil || a.Status != StatusWithdrawalApproved {
		t.Fatalf("approve: status=%s err=%v", a.Status, err)
	}
	if err := a.DecideWithdrawal(true, now); !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("decide twice: want ErrInvalidTransition, got %v", err)
	}
}

func TestBook(t *testing.T) {
	a := app(StatusSuccessful)
	if err := a.Book(now); err != nil || a.Status != StatusBooked {
		t.Fatalf("book: status=%s err=%v", a.Status, err)
	}
	if err := a.Book(now); !errors.Is(err, errs.ErrAlreadyBooked) {
		t.Fatalf("book twice: want ErrAlreadyBooked, got %v", err)
	}
	if err := app(StatusPending).Book(now); !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("book pending: want ErrInvalidTransition, got %v", err)
	}
	// a booked application can never be withdrawn
	if err := a.RequestWithdrawal(now); !errors.Is(err, errs.ErrAlreadyBooked) {
		t.Fatalf("withdraw booked: want ErrAlreadyBooked, got %v", err)
	}
}

func TestStatusClasses(t *testing.T) {
	for _, s := range []Status{StatusBooked, StatusUnsuccessful, StatusWithdrawalApproved} {
		if !s.Terminal() || s.Active() {
			t.Errorf("%s should be terminal and inactive", s)
		}
	}
	for _, s := range BlockingStatuses {
		if !s.Blocking() {
			t.Errorf("%s should block", s)
		}
	}
	if StatusUnsuccessful.Blocking() || StatusWithdrawalApproved.Blocking() {
		t.Error("resolved applications must not block re-application")
	}
}
