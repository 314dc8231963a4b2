package allocation

import (
	"context"
	"errors"
	"testing"
	"time"

	"flat-allocation/internal/adapter/repository/mysql"
	"flat-allocation/internal/domain/flat"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/testutil/projectmock"
	"flat-allocation/internal/testutil/testdb"

	"go.uber.org/zap/zaptest"
)

const (
	mgr     = "S9000001M"
	mgr2    = "S9000002N"
	officer = "T8000001K"
	other   = "T8000002L"
	ann     = "S1000001A" // Single, 36
	bob     = "S1000002B" // Married, 30
	carl    = "S1000003C" // Single, 30
	dina    = "S1000004D" // Married, 25
)

var (
	today     = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	juneOpen  = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	juneClose = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	e     *Engine
	cache *projectmock.Cache
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cache := &projectmock.Cache{}
	f := &fixture{
		e: NewEngine(mysql.NewGormUoW(testdb.Open(t)),
			WithCache(cache),
			WithLogger(zaptest.NewLogger(t)),
			WithClock(func() time.Time { return today }),
		),
		cache: cache,
		ctx:   context.Background(),
	}
	people := []RegisterPersonInput{
		{NRIC: mgr, Name: "Mona", Age: 50, MaritalStatus: person.Married, Role: person.RoleManager},
		{NRIC: mgr2, Name: "Ned", Age: 48, MaritalStatus: person.Married, Role: person.RoleManager},
		{NRIC: officer, Name: "Olly", Age: 30, MaritalStatus: person.Married, Role: person.RoleOfficer},
		{NRIC: other, Name: "Oren", Age: 40, MaritalStatus: person.Single, Role: person.RoleOfficer},
		{NRIC: ann, Name: "Ann", Age: 36, MaritalStatus: person.Single, Role: person.RoleApplicant},
		{NRIC: bob, Name: "Bob", Age: 30, MaritalStatus: person.Married, Role: person.RoleApplicant},
		{NRIC: carl, Name: "Carl", Age: 30, MaritalStatus: person.Single, Role: person.RoleApplicant},
		{NRIC: dina, Name: "Dina", Age: 25, MaritalStatus: person.Married, Role: person.RoleApplicant},
	}
	for _, in := range people {
		if _, err := f.e.RegisterPerson(f.ctx, in); err != nil {
			t.Fatalf("register %s: %v", in.NRIC, err)
		}
	}
	return f
}

func juneProject(name string, two, three, slots int) ProjectInput {
	return ProjectInput{
		Name:           name,
		Neighborhood:   "Yishun",
		OpenDate:       juneOpen,
		CloseDate:      juneClose,
		Visible:        true,
		TwoRoomUnits:   two,
		ThreeRoomUnits: three,
		TwoRoomPrice:   150000,
		ThreeRoomPrice: 250000,
		OfficerSlots:   slots,
	}
}

func (f *fixture) project(t *testing.T, in ProjectInput) {
	t.Helper()
	if _, err := f.e.CreateProject(f.ctx, mgr, in); err != nil {
		t.Fatalf("create project %s: %v", in.Name, err)
	}
}

func (f *fixture) apply(t *testing.T, nric, proj string, ft flat.Type) string {
	t.Helper()
	a, err := f.e.Apply(f.ctx, nric, ApplyInput{ProjectName: proj, FlatType: ft})
	if err != nil {
		t.Fatalf("apply %s to %s: %v", nric, proj, err)
	}
	return a.ApplicationID
}

func (f *fixture) approve(t *testing.T, applicationID string) {
	t.Helper()
	if _, err := f.e.DecideApplication(f.ctx, mgr, applicationID, true); err != nil {
		t.Fatalf("approve %s: %v", applicationID, err)
	}
}

// assign registers nric as officer of proj and approves it.
func (f *fixture) assign(t *testing.T, nric, proj string) string {
	t.Helper()
	reg, err := f.e.RegisterOfficer(f.ctx, nric, proj)
	if err != nil {
		t.Fatalf("register officer %s: %v", nric, err)
	}
	if _, err := f.e.DecideRegistration(f.ctx, mgr, reg.RegistrationID, true); err != nil {
		t.Fatalf("approve registration: %v", err)
	}
	return reg.RegistrationID
}

func (f *fixture) remaining(t *testing.T, proj string, ft flat.Type) int {
	t.Helper()
	ps, err := f.e.ListProjects(f.ctx, mgr)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range ps {
		if p.Name != proj {
			continue
		}
		for _, o := range p.Flats {
			if o.FlatType == ft {
				return o.Remaining
			}
		}
	}
	t.Fatalf("project %s / %s not listed", proj, ft)
	return -1
}

func (f *fixture) status(t *testing.T, applicationID string) string {
	t.Helper()
	a, err := f.e.GetApplication(f.ctx, mgr, applicationID)
	if err != nil {
		t.Fatal(err)
	}
	return a.Status
}

func wantKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("want %v, got %v", kind, err)
	}
}
