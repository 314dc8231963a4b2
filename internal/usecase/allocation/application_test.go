package allocation

import (
	"testing"

	"flat-allocation/internal/domain/application"
	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/flat"
)

func TestApply_Rejections(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 2, 2, 2))
	hidden := juneProject("Hidden", 2, 2, 2)
	hidden.Visible = false
	hidden.OpenDate, hidden.CloseDate = juneClose.AddDate(0, 0, 1), juneClose.AddDate(0, 1, 0)
	f.project(t, hidden)
	closed := juneProject("Closed", 2, 2, 2)
	closed.OpenDate, closed.CloseDate = juneOpen.AddDate(0, -3, 0), juneOpen.AddDate(0, -2, 0)
	f.project(t, closed)
	if _, err := f.e.CreateProject(f.ctx, mgr2, juneProject("NoThree", 2, 0, 2)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		nric string
		in   ApplyInput
		want error
	}{
		{"unknown flat type", ann, ApplyInput{ProjectName: "Acacia", FlatType: "5-Room"}, errs.ErrInvalidInput},
		{"unknown project", ann, ApplyInput{ProjectName: "Nowhere", FlatType: flat.TwoRoom}, errs.ErrNotFound},
		{"unknown person", "S0000000Z", ApplyInput{ProjectName: "Acacia", FlatType: flat.TwoRoom}, errs.ErrUnauthorized},
		{"manager", mgr, ApplyInput{ProjectName: "Acacia", FlatType: flat.TwoRoom}, errs.ErrUnauthorized},
		{"single under 35", carl, ApplyInput{ProjectName: "Acacia", FlatType: flat.TwoRoom}, errs.ErrNotEligible},
		{"single asks 3-Room", ann, ApplyInput{ProjectName: "Acacia", FlatType: flat.ThreeRoom}, errs.ErrNotEligible},
		{"project hidden", bob, ApplyInput{ProjectName: "Hidden", FlatType: flat.TwoRoom}, errs.ErrNotEligible},
		{"window closed", bob, ApplyInput{ProjectName: "Closed", FlatType: flat.TwoRoom}, errs.ErrNotEligible},
		{"no units of type", bob, ApplyInput{ProjectName: "NoThree", FlatType: flat.ThreeRoom}, errs.ErrNoCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.e.Apply(f.ctx, tt.nric, tt.in)
			wantKind(t, err, tt.want)
		})
	}
}

func TestApply_OneBlockingApplication(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 2, 2, 2))
	first := f.apply(t, bob, "Acacia", flat.TwoRoom)

	_, err := f.e.Apply(f.ctx, bob, ApplyInput{ProjectName: "Acacia", FlatType: flat.ThreeRoom})
	wantKind(t, err, errs.ErrAlreadyApplied)

	// a rejected application frees the applicant
	if _, err := f.e.DecideApplication(f.ctx, mgr, first, false); err != nil {
		t.Fatal(err)
	}
	second := f.apply(t, bob, "Acacia", flat.ThreeRoom)

	// so does an approved withdrawal
	if _, err := f.e.RequestWithdrawal(f.ctx, bob, second); err != nil {
		t.Fatal(err)
	}
	if _, err := f.e.DecideWithdrawal(f.ctx, mgr, second, true); err != nil {
		t.Fatal(err)
	}
	third := f.apply(t, bob, "Acacia", flat.ThreeRoom)

	// BOOKED blocks for good
	f.approve(t, third)
	f.assign(t, officer, "Acacia")
	if _, err := f.e.Book(f.ctx, officer, third); err != nil {
		t.Fatal(err)
	}
	_, err = f.e.Apply(f.ctx, bob, ApplyInput{ProjectName: "Acacia", FlatType: flat.TwoRoom})
	wantKind(t, err, errs.ErrAlreadyApplied)

	mine, err := f.e.ListMyApplications(f.ctx, bob)
	if err != nil || len(mine) != 3 {
		t.Fatalf("ListMyApplications = %+v, %v", mine, err)
	}
	want := []application.Status{application.StatusUnsuccessful, application.StatusWithdrawalApproved, application.StatusBooked}
	for i, a := range mine {
		if a.Status != string(want[i]) {
			t.Fatalf("application %d status = %s, want %s", i, a.Status, want[i])
		}
	}
}

func TestDecideApplication(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 1, 1, 2))
	id := f.apply(t, ann, "Acacia", flat.TwoRoom)

	_, err := f.e.DecideApplication(f.ctx, mgr2, id, true)
	wantKind(t, err, errs.ErrUnauthorized)
	_, err = f.e.DecideApplication(f.ctx, officer, id, true)
	wantKind(t, err, errs.ErrUnauthorized)
	_, err = f.e.DecideApplication(f.ctx, mgr, "missing", true)
	wantKind(t, err, errs.ErrNotFound)

	f.approve(t, id)
	_, err = f.e.DecideApplication(f.ctx, mgr, id, true)
	wantKind(t, err, errs.ErrInvalidTransition)
	_, err = f.e.DecideApplication(f.ctx, mgr, id, false)
	wantKind(t, err, errs.ErrInvalidTransition)
	if got := f.status(t, id); got != string(application.StatusSuccessful) {
		t.Fatalf("status changed by failed decision: %s", got)
	}
}

func TestDecideApplication_RejectDetachesApplicant(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 1, 1, 2))
	id := f.apply(t, ann, "Acacia", flat.TwoRoom)

	// still attached, so the project cannot go
	wantKind(t, f.e.DeleteProject(f.ctx, mgr, "Acacia"), errs.ErrProjectInUse)

	got, err := f.e.DecideApplication(f.ctx, mgr, id, false)
	if err != nil || got.Status != string(application.StatusUnsuccessful) {
		t.Fatalf("reject = %+v, %v", got, err)
	}
	if err := f.e.DeleteProject(f.ctx, mgr, "Acacia"); err != nil {
		t.Fatalf("delete after reject: %v", err)
	}
}

func TestDecideApplication_ApproveNeedsUnitLeft(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 1, 1, 2))
	first := f.apply(t, ann, "Acacia", flat.TwoRoom)
	second := f.apply(t, bob, "Acacia", flat.TwoRoom)
	third := f.apply(t, dina, "Acacia", flat.TwoRoom)
	f.approve(t, first)
	f.approve(t, second) // approval reserves nothing

	f.assign(t, officer, "Acacia")
	if _, err := f.e.Book(f.ctx, officer, first); err != nil {
		t.Fatal(err)
	}

	_, err := f.e.DecideApplication(f.ctx, mgr, third, true)
	wantKind(t, err, errs.ErrNoCapacity)
	if got := f.status(t, third); got != string(application.StatusPending) {
		t.Fatalf("status after refused approval = %s", got)
	}

	_, err = f.e.Book(f.ctx, officer, second)
	wantKind(t, err, errs.ErrNoCapacity)
	if got := f.status(t, second); got != string(application.StatusSuccessful) {
		t.Fatalf("status after refused booking = %s", got)
	}
}

func TestWithdrawal(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 2, 2, 2))
	id := f.apply(t, bob, "Acacia", flat.TwoRoom)

	_, err := f.e.RequestWithdrawal(f.ctx, ann, id)
	wantKind(t, err, errs.ErrUnauthorized)
	_, err = f.e.DecideWithdrawal(f.ctx, mgr, id, true)
	wantKind(t, err, errs.ErrInvalidTransition)

	// from PENDING, a rejected withdrawal goes back to PENDING
	if _, err := f.e.RequestWithdrawal(f.ctx, bob, id); err != nil {
		t.Fatal(err)
	}
	_, err = f.e.RequestWithdrawal(f.ctx, bob, id)
	wantKind(t, err, errs.ErrAlreadyRequested)
	_, err = f.e.DecideWithdrawal(f.ctx, mgr2, id, false)
	wantKind(t, err, errs.ErrUnauthorized)
	got, err := f.e.DecideWithdrawal(f.ctx, mgr, id, false)
	if err != nil || got.Status != string(application.StatusPending) {
		t.Fatalf("reject = %+v, %v", got, err)
	}

	// booked applications cannot be withdrawn
	f.approve(t, id)
	f.assign(t, officer, "Acacia")
	if _, err := f.e.Book(f.ctx, officer, id); err != nil {
		t.Fatal(err)
	}
	_, err = f.e.RequestWithdrawal(f.ctx, bob, id)
	wantKind(t, err, errs.ErrAlreadyBooked)
	if got := f.status(t, id); got != string(application.StatusBooked) {
		t.Fatalf("status = %s, want BOOKED", got)
	}
}

func TestWithdrawal_FromTerminalStatus(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 2, 2, 2))
	id := f.apply(t, bob, "Acacia", flat.TwoRoom)
	if _, err := f.e.DecideApplication(f.ctx, mgr, id, false); err != nil {
		t.Fatal(err)
	}
	_, err := f.e.RequestWithdrawal(f.ctx, bob, id)
	wantKind(t, err, errs.ErrInvalidTransition)
}

func TestApplicationVisibility(t *testing.T) {
	f := newFixture(t)
	f.project(t, juneProject("Acacia", 2, 2, 2))
	id := f.apply(t, bob, "Acacia", flat.TwoRoom)
	f.assign(t, officer, "Acacia")

	for _, nric := range []string{bob, mgr, officer} {
		if _, err := f.e.GetApplication(f.ctx, nric, id); err != nil {
			t.Fatalf("%s: %v", nric, err)
		}
	}
	_, err := f.e.GetApplication(f.ctx, ann, id)
	wantKind(t, err, errs.ErrUnauthorized)

	list, err := f.e.ListProjectApplications(f.ctx, officer, "Acacia")
	if err != nil || len(list) != 1 || list[0].ApplicationID != id {
		t.Fatalf("ListProjectApplications = %+v, %v", list, err)
	}
	_, err = f.e.ListProjectApplications(f.ctx, mgr2, "Acacia")
	wantKind(t, err, errs.ErrUnauthorized)
}
