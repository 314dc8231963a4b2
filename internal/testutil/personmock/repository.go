package personmock

import (
	"context"

	"flat-allocation/internal/domain/errs"
	domain "flat-allocation/internal/domain/person"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups report errs.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn    func(ctx context.Context, p *domain.Person) error
	GetByNRICFn func(ctx context.Context, nric string) (*domain.Person, error)
	ListFn      func(ctx context.Context) ([]domain.Person, error)
}

// Fixed returns a Repo that knows exactly people.
func Fixed(people ...domain.Person) *Repo {
	return &Repo{
		GetByNRICFn: func(_ context.Context, nric string) (*domain.Person, error) {
			for i := range people {
				if people[i].NRIC == nric {
					p := people[i]
					return &p, nil
				}
			}
			return nil, errs.ErrNotFound
		},
		ListFn: func(context.Context) ([]domain.Person, error) { return people, nil },
	}
}

func (m *Repo) Create(ctx context.Context, p *domain.Person) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByNRIC(ctx context.Context, nric string) (*domain.Person, error) {
	if m.GetByNRICFn != nil {
		return m.GetByNRICFn(ctx, nric)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) List(ctx context.Context) ([]domain.Person, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
