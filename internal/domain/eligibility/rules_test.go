package eligibility

import (
	"errors"
	"testing"
	"time"

	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/flat"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/domain/project"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name    string
		profile person.Profile
		two     bool
		three   bool
	}{
		{"single 35", person.Profile{Age: 35, MaritalStatus: person.Single}, true, false},
		{"single 34", person.Profile{Age: 34, MaritalStatus: person.Single}, false, false},
		{"married 21", person.Profile{Age: 21, MaritalStatus: person.Married}, true, true},
		{"married 20", person.Profile{Age: 20, MaritalStatus: person.Married}, false, false},
		{"single 60", person.Profile{Age: 60, MaritalStatus: person.Single}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allows(tt.profile, flat.TwoRoom); got != tt.two {
				t.Errorf("2-Room = %v, want %v", got, tt.two)
			}
			if got := Allows(tt.profile, flat.ThreeRoom); got != tt.three {
				t.Errorf("3-Room = %v, want %v", got, tt.three)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	open := func() *project.Project {
		return &project.Project{
			Name:      "Cedar",
			Visible:   true,
			OpenDate:  now.AddDate(0, 0, -1),
			CloseDate: now.AddDate(0, 0, 30),
		}
	}
	single36 := person.Profile{Age: 36, MaritalStatus: person.Single}

	if err := Check(single36, open(), flat.TwoRoom, now); err != nil {
		t.Fatalf("expected eligible, got %v", err)
	}

	hidden := open()
	hidden.Visible = false
	closed := open()
	closed.CloseDate = now.AddDate(0, 0, -1)

	for name, tc := range map[string]struct {
		proj *project.Project
		ft   flat.Type
	}{
		"hidden":     {hidden, flat.TwoRoom},
		"closed":     {closed, flat.TwoRoom},
		"wrong type": {open(), flat.ThreeRoom},
	} {
		if err := Check(single36, tc.proj, tc.ft, now); !errors.Is(err, errs.ErrNotEligible) {
			t.Errorf("%s: want ErrNotEligible, got %v", name, err)
		}
	}
}

func TestProjectOpen(t *testing.T) {
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	p := &project.Project{Visible: true, OpenDate: now, CloseDate: now}
	if !ProjectOpen(p, now) {
		t.Fatal("single-day window should be open on that day")
	}
	p.Visible = false
	if ProjectOpen(p, now) {
		t.Fatal("hidden project must not be open")
	}
}
