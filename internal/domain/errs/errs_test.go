package errs

import (
	"errors"
	"io"
	"testing"
)

func TestStorage_WrapsAndUnwraps(t *testing.T) {
	err := Storage("projects.save", io.ErrUnexpectedEOF)
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("cause lost: %v", err)
	}
	var se *StorageError
	if !errors.As(err, &se) || se.Op != "projects.save" {
		t.Fatalf("unexpected storage error: %#v", err)
	}
}

func TestStorage_PassThrough(t *testing.T) {
	if Storage("x", nil) != nil {
		t.Fatal("nil must stay nil")
	}
	if got := Storage("x", ErrNotFound); got != ErrNotFound {
		t.Fatalf("not-found must pass through, got %v", got)
	}
	inner := Storage("inner", io.EOF)
	if got := Storage("outer", inner); got != inner {
		t.Fatalf("double wrap: %v", got)
	}
}

func TestReason_KeepsKind(t *testing.T) {
	err := Reason(ErrNotEligible, "age %d below %d", 30, 35)
	if !errors.Is(err, ErrNotEligible) {
		t.Fatalf("kind lost: %v", err)
	}
	if err.Error() != "applicant not eligible: age 30 below 35" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"sentinel", ErrNoCapacity, "no_capacity"},
		{"with reason", Reason(ErrRoleConflict, "officer on %s", "Acacia"), "role_conflict"},
		{"storage", Storage("op", io.EOF), "storage"},
		{"foreign", io.EOF, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Fatalf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
