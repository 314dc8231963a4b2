package projectmock

import (
	"context"

	"flat-allocation/internal/domain/errs"
	domain "flat-allocation/internal/domain/project"
)

var (
	_ domain.Repository = (*Repo)(nil)
	_ domain.Cache      = (*Cache)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups report errs.ErrNotFound; unset writes succeed.
type Repo struct {
	ListFn               func(ctx context.Context) ([]domain.Project, error)
	ListByManagerFn      func(ctx context.Context, managerNRIC string) ([]domain.Project, error)
	GetByNameFn          func(ctx context.Context, name string) (*domain.Project, error)
	GetByNameForUpdateFn func(ctx context.Context, name string) (*domain.Project, error)
	CreateFn             func(ctx context.Context, p *domain.Project) error
	SaveFn               func(ctx context.Context, p *domain.Project) error
	DeleteByNameFn       func(ctx context.Context, name string) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Project, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByManager(ctx context.Context, managerNRIC string) ([]domain.Project, error) {
	if m.ListByManagerFn != nil {
		return m.ListByManagerFn(ctx, managerNRIC)
	}
	return nil, nil
}
func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) GetByNameForUpdate(ctx context.Context, name string) (*domain.Project, error) {
	if m.GetByNameForUpdateFn != nil {
		return m.GetByNameForUpdateFn(ctx, name)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, p *domain.Project) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
func (m *Repo) DeleteByName(ctx context.Context, name string) error {
	if m.DeleteByNameFn != nil {
		return m.DeleteByNameFn(ctx, name)
	}
	return nil
}

// Cache is an in-memory domain.Cache that counts calls. BeforeSetFn, when
// set, runs at the start of SetAll.
type Cache struct {
	Projects    []domain.Project
	Filled      bool
	Generation  int64
	Gets        int
	Sets        int
	StaleSets   int
	Invalidates int
	BeforeSetFn func()
}

func (c *Cache) GetAll(context.Context) ([]domain.Project, int64, bool) {
	c.Gets++
	return c.Projects, c.Generation, c.Filled
}
func (c *Cache) SetAll(_ context.Context, gen int64, ps []domain.Project) {
	if c.BeforeSetFn != nil {
		c.BeforeSetFn()
	}
	c.Sets++
	if gen != c.Generation {
		c.StaleSets++
		return
	}
	c.Projects, c.Filled = ps, true
}
func (c *Cache) Invalidate(context.Context) {
	c.Invalidates++
	c.Generation++
	c.Projects, c.Filled = nil, false
}
