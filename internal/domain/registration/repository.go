package registration

import "context"

type Repository interface {
	Create(ctx context.Context, r *Registration) error
	Save(ctx context.Context, r *Registration) error
	GetByRegistrationID(ctx context.Context, registrationID string) (*Registration, error)
	// GetHeldByOfficer returns the officer's PENDING or APPROVED registration.
	GetHeldByOfficer(ctx context.Context, nric string) (*Registration, error)
	ListByProject(ctx context.Context, projectName string) ([]Registration, error)
}
