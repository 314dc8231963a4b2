package applicationmock

import (
	"context"

	domain "flat-allocation/internal/domain/application"
	"flat-allocation/internal/domain/errs"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups report errs.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn                 func(ctx context.Context, a *domain.Application) error
	SaveFn                   func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn     func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetBlockingByApplicantFn func(ctx context.Context, nric string) (*domain.Application, error)
	ListByProjectFn          func(ctx context.Context, projectName string) ([]domain.Application, error)
	ListByApplicantFn        func(ctx context.Context, nric string) ([]domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) GetBlockingByApplicant(ctx context.Context, nric string) (*domain.Application, error) {
	if m.GetBlockingByApplicantFn != nil {
		return m.GetBlockingByApplicantFn(ctx, nric)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) ListByProject(ctx context.Context, projectName string) ([]domain.Application, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectName)
	}
	return nil, nil
}
func (m *Repo) ListByApplicant(ctx context.Context, nric string) ([]domain.Application, error) {
	if m.ListByApplicantFn != nil {
		return m.ListByApplicantFn(ctx, nric)
	}
	return nil, nil
}
