package project

import "context"

type Repository interface {
	// List loads every project.
	List(ctx context.Context) ([]Project, error)
	ListByManager(ctx context.Context, managerNRIC string) ([]Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	// GetByNameForUpdate row-locks the project for the rest of the tx.
	GetByNameForUpdate(ctx context.Context, name string) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Save(ctx context.Context, p *Project) error
	DeleteByName(ctx context.Context, name string) error
}

// Cache holds the project list between reads. Mutations call Invalidate
// after commit; the next List reloads from the repository.
//
// GetAll also reports the cache generation. SetAll stores ps only while the
// generation is still gen, so a list loaded before an Invalidate is dropped.
type Cache interface {
	GetAll(ctx context.Context) (ps []Project, gen int64, ok bool)
	SetAll(ctx context.Context, gen int64, ps []Project)
	Invalidate(ctx context.Context)
}
