package invoice

import "context"

type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	ListByApplicant(ctx context.Context, nric string) ([]Invoice, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (*Invoice, error)
	Create(ctx context.Context, i *Invoice) error
	Save(ctx context.Context, i *Invoice) error
}

// Receipts are append-only; there is no update.
type ReceiptRepository interface {
	List(ctx context.Context) ([]Receipt, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (*Receipt, error)
	Create(ctx context.Context, r *Receipt) error
}
