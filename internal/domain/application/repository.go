package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetBlockingByApplicant returns the applicant's PENDING, SUCCESSFUL,
	// WITHDRAWAL_REQUESTED or BOOKED application.
	GetBlockingByApplicant(ctx context.Context, nric string) (*Application, error)
	ListByProject(ctx context.Context, projectName string) ([]Application, error)
	ListByApplicant(ctx context.Context, nric string) ([]Application, error)
}
