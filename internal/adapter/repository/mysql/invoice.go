package mysql

import (
	"context"

	invoiceDomain "flat-allocation/internal/domain/invoice"

	"gorm.io/gorm"
)

type InvoiceRepository struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository { return &InvoiceRepository{db: db} }

func (r *InvoiceRepository) List(ctx context.Context) ([]invoiceDomain.Invoice, error) {
	var out []invoiceDomain.Invoice
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, wrap("invoices.list", err)
	}
	return out, nil
}

func (r *InvoiceRepository) ListByApplicant(ctx context.Context, nric string) ([]invoiceDomain.Invoice, error) {
	var out []invoiceDomain.Invoice
	if err := r.db.WithContext(ctx).Where("applicant_nric = ?", nric).Order("id").Find(&out).Error; err != nil {
		return nil, wrap("invoices.list_by_applicant", err)
	}
	return out, nil
}

func (r *InvoiceRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).First(&out).Error; err != nil {
		return nil, wrap("invoices.get", err)
	}
	return &out, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, i *invoiceDomain.Invoice) error {
	return wrap("invoices.create", r.db.WithContext(ctx).Create(i).Error)
}

func (r *InvoiceRepository) Save(ctx context.Context, i *invoiceDomain.Invoice) error {
	return wrap("invoices.save", r.db.WithContext(ctx).Save(i).Error)
}

type ReceiptRepository struct{ db *gorm.DB }

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository { return &ReceiptRepository{db: db} }

func (r *ReceiptRepository) List(ctx context.Context) ([]invoiceDomain.Receipt, error) {
	var out []invoiceDomain.Receipt
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, wrap("receipts.list", err)
	}
	return out, nil
}

func (r *ReceiptRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*invoiceDomain.Receipt, error) {
	var out invoiceDomain.Receipt
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).First(&out).Error; err != nil {
		return nil, wrap("receipts.get", err)
	}
	return &out, nil
}

func (r *ReceiptRepository) Create(ctx context.Context, rc *invoiceDomain.Receipt) error {
	return wrap("receipts.create", r.db.WithContext(ctx).Create(rc).Error)
}
