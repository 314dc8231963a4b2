package registrationmock

import (
	"context"

	"flat-allocation/internal/domain/errs"
	domain "flat-allocation/internal/domain/registration"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups report errs.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn              func(ctx context.Context, r *domain.Registration) error
	SaveFn                func(ctx context.Context, r *domain.Registration) error
	GetByRegistrationIDFn func(ctx context.Context, registrationID string) (*domain.Registration, error)
	GetHeldByOfficerFn    func(ctx context.Context, nric string) (*domain.Registration, error)
	ListByProjectFn       func(ctx context.Context, projectName string) ([]domain.Registration, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Registration) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, r *domain.Registration) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Registration, error) {
	if m.GetByRegistrationIDFn != nil {
		return m.GetByRegistrationIDFn(ctx, registrationID)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) GetHeldByOfficer(ctx context.Context, nric string) (*domain.Registration, error) {
	if m.GetHeldByOfficerFn != nil {
		return m.GetHeldByOfficerFn(ctx, nric)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) ListByProject(ctx context.Context, projectName string) ([]domain.Registration, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectName)
	}
	return nil, nil
}
