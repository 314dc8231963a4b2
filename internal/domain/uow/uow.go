package uow

import (
	"context"

	"flat-allocation/internal/domain/application"
	"flat-allocation/internal/domain/invoice"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/registration"
)

// Repos are bound to one transaction.
type Repos struct {
	People        person.Repository
	Projects      project.Repository
	Applications  application.Repository
	Registrations registration.Repository
	Invoices      invoice.Repository
	Receipts      invoice.ReceiptRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the project row first, then pass it in
	WithinProjectTx(ctx context.Context, projectName string, fn func(r Repos, p *project.Project) error) error
}
