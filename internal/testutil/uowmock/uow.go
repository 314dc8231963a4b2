package uowmock

import (
	"context"
	"errors"

	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinProjectTxFn func(ctx context.Context, projectName string, fn func(r uow.Repos, p *project.Project) error) error
}

func New() *UoW { return &UoW{} }

// Over runs every transaction body directly against repos. WithinProjectTx
// loads the project through repos.Projects.GetByNameForUpdate first.
func Over(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinProjectTxFn: func(ctx context.Context, name string, fn func(uow.Repos, *project.Project) error) error {
			p, err := repos.Projects.GetByNameForUpdate(ctx, name)
			if err != nil {
				return err
			}
			return fn(repos, p)
		},
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinProjectTx(fn func(context.Context, string, func(uow.Repos, *project.Project) error) error) *UoW {
	m.WithinProjectTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinProjectTx(ctx context.Context, projectName string, fn func(r uow.Repos, p *project.Project) error) error {
	if m.WithinProjectTxFn != nil {
		return m.WithinProjectTxFn(ctx, projectName, fn)
	}
	return errUnimplemented
}
