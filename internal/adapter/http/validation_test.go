package http

import (
	"errors"
	"testing"
)

func TestNRICValidation(t *testing.T) {
	type P struct {
		NRIC string `json:"nric" validate:"nric"`
	}
	cv := NewValidator()

	for _, s := range []string{"S1234567A", "t7654321z", "F0000000X", "G9999999b"} {
		if err := cv.Validate(P{NRIC: s}); err != nil {
			t.Fatalf("expected valid nric %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{
		"",           // empty
		"A1234567B",  // bad prefix
		"S123456A",   // 6 digits
		"S12345678A", // 8 digits
		"S1234567",   // no suffix
		"S12345X7A",  // letter in digits
	} {
		err := cv.Validate(P{NRIC: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "nric", "NRIC like") {
			t.Fatalf("expected nric message for %q, got: %+v", s, fe)
		}
	}
}

func TestFlatTypeValidation(t *testing.T) {
	type P struct {
		FlatType string `json:"flat_type" validate:"flattype"`
	}
	cv := NewValidator()

	for _, s := range []string{"2-Room", "3-Room", "2room", "3"} {
		if err := cv.Validate(P{FlatType: s}); err != nil {
			t.Fatalf("expected flattype OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "4-Room", "studio"} {
		err := cv.Validate(P{FlatType: s})
		if err == nil {
			t.Fatalf("expected flattype error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "flat_type", "2-Room or 3-Room") {
			t.Fatalf("expected flattype message for %q, got %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Price float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{350000, 2.00, 0.9, 199999.99} {
		if err := cv.Validate(P{Price: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Price: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Price", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string `json:"name" validate:"required"`
		Age    int    `json:"age" validate:"gte=1"`
		Slots  int    `json:"officer_slots" validate:"lte=10"`
		Status string `json:"marital_status" validate:"oneof=Single Married"`
		Open   string `json:"open_date" validate:"datetime=2006-01-02"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Age: 0, Slots: 11, Status: "Divorced", Open: "10/06/2025"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	checks := []struct{ field, msg string }{
		{"name", "is required"},
		{"age", "greater than or equal to 1"},
		{"officer_slots", "less than or equal to 10"},
		{"marital_status", "one of: Single Married"},
		{"open_date", "date formatted 2006-01-02"},
	}
	for _, c := range checks {
		if !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("missing %q for %s: %+v", c.msg, c.field, fe)
		}
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
