package person

import "context"

type Repository interface {
	Create(ctx context.Context, p *Person) error
	GetByNRIC(ctx context.Context, nric string) (*Person, error)
	List(ctx context.Context) ([]Person, error)
}
