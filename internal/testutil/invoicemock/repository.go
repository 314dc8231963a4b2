package invoicemock

import (
	"context"

	"flat-allocation/internal/domain/errs"
	domain "flat-allocation/internal/domain/invoice"
)

var (
	_ domain.Repository        = (*Repo)(nil)
	_ domain.ReceiptRepository = (*ReceiptRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups report errs.ErrNotFound; unset writes succeed.
type Repo struct {
	ListFn            func(ctx context.Context) ([]domain.Invoice, error)
	ListByApplicantFn func(ctx context.Context, nric string) ([]domain.Invoice, error)
	GetByInvoiceIDFn  func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	CreateFn          func(ctx context.Context, i *domain.Invoice) error
	SaveFn            func(ctx context.Context, i *domain.Invoice) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Invoice, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByApplicant(ctx context.Context, nric string) ([]domain.Invoice, error) {
	if m.ListByApplicantFn != nil {
		return m.ListByApplicantFn(ctx, nric)
	}
	return nil, nil
}
func (m *Repo) GetByInvoiceID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if m.GetByInvoiceIDFn != nil {
		return m.GetByInvoiceIDFn(ctx, invoiceID)
	}
	return nil, errs.ErrNotFound
}
func (m *Repo) Create(ctx context.Context, i *domain.Invoice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, i *domain.Invoice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

// ReceiptRepo is the receipt counterpart of Repo.
type ReceiptRepo struct {
	ListFn           func(ctx context.Context) ([]domain.Receipt, error)
	GetByInvoiceIDFn func(ctx context.Context, invoiceID string) (*domain.Receipt, error)
	CreateFn         func(ctx context.Context, r *domain.Receipt) error
}

func (m *ReceiptRepo) List(ctx context.Context) ([]domain.Receipt, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *ReceiptRepo) GetByInvoiceID(ctx context.Context, invoiceID string) (*domain.Receipt, error) {
	if m.GetByInvoiceIDFn != nil {
		return m.GetByInvoiceIDFn(ctx, invoiceID)
	}
	return nil, errs.ErrNotFound
}
func (m *ReceiptRepo) Create(ctx context.Context, r *domain.Receipt) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
